package seed

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/pkg/ingredient"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2/log"
)

// LoadIngredients reads a JSON array of {name, measurement_unit} objects.
func LoadIngredients(r io.Reader) ([]domain.CreateIngredientRequest, error) {
	var items []domain.CreateIngredientRequest
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}
	return items, nil
}

// Ingredients imports the reference ingredient list at path, skipping pairs already stored.
func Ingredients(ctx context.Context, service ingredient.IngredientService, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	items, err := LoadIngredients(file)
	if err != nil {
		return err
	}

	created, err := service.ImportIngredients(ctx, items)
	if err != nil {
		return fmt.Errorf("import ingredients: %w", err)
	}

	log.Infof("Seeded %d of %d ingredients from %s", created, len(items), path)
	return nil
}

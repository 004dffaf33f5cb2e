package seed

import (
	"Foodgram-Backend/internal/testutil"
	"Foodgram-Backend/pkg/ingredient"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[
  {"name": "абрикосовое варенье", "measurement_unit": "г"},
  {"name": "абрикосовое пюре", "measurement_unit": "г"},
  {"name": "агар-агар", "measurement_unit": "г"}
]`

func TestLoadIngredients(t *testing.T) {
	items, err := LoadIngredients(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "агар-агар", items[2].Name)
	assert.Equal(t, "г", items[2].MeasurementUnit)

	_, err = LoadIngredients(strings.NewReader(`{"name": "x"}`))
	assert.Error(t, err)
}

func TestIngredients_RunTwice(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := ingredient.NewIngredientService(ingredient.NewIngredientRepository(db))
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "ingredients.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	require.NoError(t, Ingredients(ctx, svc, path))
	require.NoError(t, Ingredients(ctx, svc, path))

	all, err := svc.GetIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	assert.Error(t, Ingredients(ctx, svc, filepath.Join(t.TempDir(), "missing.json")))
}

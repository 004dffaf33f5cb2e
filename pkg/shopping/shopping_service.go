package shopping

import (
	"Foodgram-Backend/domain"
	"context"
	"fmt"
	"strings"
)

type (
	ShoppingService interface {
		DownloadShoppingList(ctx context.Context, userID string) (string, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository) ShoppingService {
	return &shoppingService{shoppingRepository: shoppingRepository}
}

func (s *shoppingService) DownloadShoppingList(ctx context.Context, userID string) (string, error) {
	items, err := s.shoppingRepository.AggregateShoppingList(ctx, userID)
	if err != nil {
		return "", err
	}
	return RenderShoppingList(items), nil
}

// RenderShoppingList writes one "<name>: <total> <unit>" line per item.
func RenderShoppingList(items []domain.ShoppingListItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s: %d %s\n", item.Name, item.TotalAmount, item.MeasurementUnit)
	}
	return b.String()
}

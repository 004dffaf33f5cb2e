package domain

var (
	MessageFailedDownloadShoppingList = "failed to download shopping list"

	ShoppingListFilename = "list.txt"
)

// ShoppingListItem is one aggregated (name, unit) group of the shopping list.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	TotalAmount     int64  `json:"total_amount"`
}

package models

import (
	"fmt"
	"strconv"
)

// DefaultIcon is assigned to every item created by the user.
const DefaultIcon = "🌿"

// KnownStatuses are the statuses offered when adding an item. Any other
// non-empty status is accepted as well.
var KnownStatuses = []string{"disponible", "en uso", "en mantenimiento", "agotado"}

// Item is one inventory entry of a category.
type Item struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Status string  `json:"status"`
	Icon   string  `json:"icon"`
}

// NewItem is the user input for a new inventory entry.
type NewItem struct {
	Name   string
	Amount float64
	Unit   string
	Status string
}

// String renders the item as a single display line.
func (i Item) String() string {
	return fmt.Sprintf("%s - %s %s (%s) %s", i.Name, strconv.FormatFloat(i.Amount, 'f', -1, 64), i.Unit, i.Status, i.Icon)
}

package estoque

import (
	"fmt"
	"strings"
)

// MovementType classifies an inbound movement. The canonical values are the
// ones the legacy documents persist, in Portuguese.
type MovementType string

const (
	// Purchase is stock bought from a supplier.
	Purchase MovementType = "Compra"
	// Inventory is stock added by a physical inventory count.
	Inventory MovementType = "Inventário"
	// Return is stock coming back from a customer.
	Return MovementType = "Devolução"
)

// ParseMovementType resolves user input to a canonical movement type.
// An empty string defaults to Purchase. New movements are restricted to the
// closed set; free-text types found in legacy documents are kept as-is on
// load but can no longer be written.
func ParseMovementType(s string) (MovementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Purchase, nil
	case "compra", "purchase":
		return Purchase, nil
	case "inventário", "inventario", "inventory":
		return Inventory, nil
	case "devolução", "devolucao", "return":
		return Return, nil
	default:
		return "", fmt.Errorf("unknown movement type %q (want %s, %s or %s)", s, Purchase, Inventory, Return)
	}
}

// Inbound is a movement that increases stock. Total is frozen at record time
// (Quantity × UnitCost); later changes to the product's unit cost never
// rewrite history.
type Inbound struct {
	Date     Date
	Type     MovementType
	Quantity Quantity
	UnitCost Money
	Total    Money
}

// Outbound is a movement that decreases stock, valued at the sale price in
// effect when it was recorded.
type Outbound struct {
	Date      Date
	Quantity  Quantity
	UnitPrice Money
	Total     Money
}

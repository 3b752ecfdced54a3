package estoque

import "testing"

func TestParseMovementType(t *testing.T) {
	tests := []struct {
		input    string
		expected MovementType
		err      bool
	}{
		{"", Purchase, false}, // empty defaults to a purchase
		{"compra", Purchase, false},
		{"Compra", Purchase, false},
		{"purchase", Purchase, false},
		{"Inventário", Inventory, false},
		{"inventario", Inventory, false},
		{"INVENTORY", Inventory, false},
		{"devolução", Return, false},
		{"Devolucao", Return, false},
		{"return", Return, false},
		{" compra ", Purchase, false},
		{"venda", "", true},
		{"x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMovementType(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseMovementType(%q) error = %v, want err=%v", tt.input, err, tt.err)
			}
			if got != tt.expected {
				t.Errorf("ParseMovementType(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

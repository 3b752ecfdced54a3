package estoque

import "fmt"

// Register creates or edits a product. The name is normalized first; the four
// scalar fields are always overwritten wholesale (upsert semantics), the
// movement history is untouched. It returns the normalized name.
func (s *Stock) Register(name string, min, desired Quantity, cost, price Money) string {
	name = Normalize(name)
	p, ok := s.products[name]
	if !ok {
		p = &Product{}
		s.products[name] = p
	}
	p.Min = min
	p.Desired = desired
	p.Cost = cost
	p.Price = price
	return name
}

// RecordInbound appends an inbound movement to the product's ledger. The
// entry's total is frozen at record time; a zero date defaults to today.
// The whole operation is rejected on the first invalid input, the ledger is
// never partially mutated.
func (s *Stock) RecordInbound(name string, typ MovementType, qty Quantity, unitCost Money, on Date) (Inbound, error) {
	p := s.Product(name)
	if p == nil {
		return Inbound{}, fmt.Errorf("%w: %q", ErrUnknownProduct, Normalize(name))
	}
	if !qty.IsPositive() {
		return Inbound{}, fmt.Errorf("%w: inbound quantity must be positive, got %s", ErrInvalidQuantity, qty)
	}
	if on.IsZero() {
		on = Today()
	}
	e := Inbound{
		Date:     on,
		Type:     typ,
		Quantity: qty,
		UnitCost: unitCost,
		Total:    unitCost.Mul(qty),
	}
	p.inbounds = append(p.inbounds, e)
	return e, nil
}

// RecordOutbound appends an outbound movement to the product's ledger. It is
// rejected when the quantity is not positive or exceeds the quantity on hand
// at record time; the ledger is never partially mutated.
func (s *Stock) RecordOutbound(name string, qty Quantity, unitPrice Money, on Date) (Outbound, error) {
	p := s.Product(name)
	if p == nil {
		return Outbound{}, fmt.Errorf("%w: %q", ErrUnknownProduct, Normalize(name))
	}
	if !qty.IsPositive() {
		return Outbound{}, fmt.Errorf("%w: outbound quantity must be positive, got %s", ErrInvalidQuantity, qty)
	}
	if onHand := p.OnHand(); qty.GreaterThan(onHand) {
		return Outbound{}, fmt.Errorf("%w: only %s on hand, cannot remove %s", ErrInvalidQuantity, onHand, qty)
	}
	if on.IsZero() {
		on = Today()
	}
	e := Outbound{
		Date:      on,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Total:     unitPrice.Mul(qty),
	}
	p.outbounds = append(p.outbounds, e)
	return e, nil
}

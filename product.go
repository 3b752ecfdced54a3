package estoque

import "iter"

// Product is the ledger of a single stock-keeping unit: its thresholds and
// unit economics, plus the full history of inbound and outbound movements.
//
// Movements are append-only. There is no operation to edit or retract an
// entry; corrections are recorded as new movements.
type Product struct {
	Min     Quantity // below this level the product is low on stock
	Desired Quantity // target level used to size purchase suggestions
	Cost    Money    // most recently set acquisition cost per unit
	Price   Money    // most recently set sale price per unit

	inbounds  []Inbound
	outbounds []Outbound
}

// NewProduct creates a product with empty movement history.
func NewProduct(min, desired Quantity, cost, price Money) *Product {
	return &Product{Min: min, Desired: desired, Cost: cost, Price: price}
}

// Inbounds iterates over the inbound history in insertion order.
func (p *Product) Inbounds() iter.Seq[Inbound] {
	return func(yield func(Inbound) bool) {
		for _, e := range p.inbounds {
			if !yield(e) {
				return
			}
		}
	}
}

// Outbounds iterates over the outbound history in insertion order.
func (p *Product) Outbounds() iter.Seq[Outbound] {
	return func(yield func(Outbound) bool) {
		for _, e := range p.outbounds {
			if !yield(e) {
				return
			}
		}
	}
}

// TotalIn returns the sum of all inbound quantities.
func (p *Product) TotalIn() Quantity {
	var total Quantity
	for _, e := range p.inbounds {
		total = total.Add(e.Quantity)
	}
	return total
}

// TotalOut returns the sum of all outbound quantities.
func (p *Product) TotalOut() Quantity {
	var total Quantity
	for _, e := range p.outbounds {
		total = total.Add(e.Quantity)
	}
	return total
}

// OnHand returns the quantity currently in stock. It is always derived from
// the movement history; no counter is stored that could drift out of sync.
func (p *Product) OnHand() Quantity {
	return p.TotalIn().Sub(p.TotalOut())
}

// InvestedCost returns the sum of all inbound totals. This is cumulative
// acquisition spend, not net asset value: outbound movements do not reduce it.
func (p *Product) InvestedCost() Money {
	var total Money
	for _, e := range p.inbounds {
		total = total.Add(e.Total)
	}
	return total
}

// LowStock reports whether the quantity on hand is strictly below the
// minimum level.
func (p *Product) LowStock() bool {
	return p.OnHand().LessThan(p.Min)
}

// PurchaseGap returns how many units are missing to reach the desired level,
// or zero when the product is at or above it.
func (p *Product) PurchaseGap() Quantity {
	gap := p.Desired.Sub(p.OnHand())
	if gap.IsNegative() {
		return Quantity{}
	}
	return gap
}

// PurchaseCost estimates the cost of closing the purchase gap at the current
// unit cost.
func (p *Product) PurchaseCost() Money {
	return p.Cost.Mul(p.PurchaseGap())
}

package estoque

// SeedStock returns the initial dataset used when no stock document exists
// yet: the six products of the mug shop, with the movements they had when the
// ledger was first put together.
func SeedStock(currency string) *Stock {
	m := func(v float64) Money { return M(v, currency) }
	s := NewStock()

	add := func(name string, min, des, cost, price float64) *Product {
		p := NewProduct(Q(min), Q(des), m(cost), m(price))
		s.products[Normalize(name)] = p
		return p
	}
	in := func(p *Product, date string, qty, cost, total float64) {
		p.inbounds = append(p.inbounds, Inbound{
			Date:     MustParseDate(date),
			Type:     Inventory,
			Quantity: Q(qty),
			UnitCost: m(cost),
			Total:    m(total),
		})
	}
	out := func(p *Product, date string, qty, price, total float64) {
		p.outbounds = append(p.outbounds, Outbound{
			Date:      MustParseDate(date),
			Quantity:  Q(qty),
			UnitPrice: m(price),
			Total:     m(total),
		})
	}

	p := add("Xícara Comum Branca", 50, 75, 13.33, 35.00)
	in(p, "17/01/2026", 20, 13.33, 266.60)

	p = add("Xícara Mágica", 50, 75, 16.49, 45.00)
	in(p, "17/01/2026", 50, 16.49, 824.50)

	p = add("Xícara Prontas", 50, 75, 13.33, 35.00)
	in(p, "17/01/2026", 10, 13.33, 133.30)

	p = add("Xícara Colorida", 50, 75, 13.33, 35.00)
	in(p, "17/01/2026", 25, 13.33, 333.25)

	p = add("Xícara Comum Preta", 50, 75, 13.33, 35.00)
	in(p, "17/01/2026", 15, 13.33, 199.95)
	out(p, "15/01/2026", 15, 35.00, 525.00)

	p = add("Xícara Grande", 15, 22.5, 14.50, 38.00)
	in(p, "17/01/2026", 15, 14.50, 217.50)
	out(p, "05/01/2026", 15, 38.00, 570.00)

	return s
}

package estoque

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titler title-cases product names the way the legacy data was entered,
// with Brazilian Portuguese casing rules.
var titler = cases.Title(language.BrazilianPortuguese)

// Normalize trims and title-cases a product name, so "xícara grande" and
// "Xícara Grande" resolve to the same ledger entry.
func Normalize(name string) string {
	return titler.String(strings.TrimSpace(name))
}

// Stock is the full mapping of product names to their ledgers. It is the only
// mutable state of the application, owned by a single session at a time.
type Stock struct {
	products map[string]*Product
}

// NewStock creates an empty stock.
func NewStock() *Stock {
	return &Stock{products: make(map[string]*Product)}
}

// Product returns the ledger registered under this name, or nil if unknown.
// The name is normalized before lookup.
func (s *Stock) Product(name string) *Product {
	return s.products[Normalize(name)]
}

// Len returns the number of registered products.
func (s *Stock) Len() int { return len(s.products) }

// Names returns all product names sorted alphabetically, for selection lists.
func (s *Stock) Names() []string {
	names := slices.Collect(maps.Keys(s.products))
	slices.Sort(names)
	return names
}

// Products iterates over (name, ledger) pairs in alphabetical name order.
func (s *Stock) Products() iter.Seq2[string, *Product] {
	return func(yield func(string, *Product) bool) {
		for _, name := range s.Names() {
			if !yield(name, s.products[name]) {
				return
			}
		}
	}
}

// Summary is an at-a-glance overview of the whole stock. Every figure is
// recomputed from the movement histories when the summary is built.
type Summary struct {
	Products     int      // number of registered products
	Units        Quantity // total units on hand across all products
	StockValue   Money    // on-hand quantity valued at sale price
	InvestedCost Money    // cumulative acquisition spend
	Desired      Quantity // sum of desired levels
	DesiredPct   Percent  // units on hand as a share of the desired total
}

// Summarize computes the stock summary.
func (s *Stock) Summarize() Summary {
	sum := Summary{Products: len(s.products)}
	for _, p := range s.products {
		onHand := p.OnHand()
		sum.Units = sum.Units.Add(onHand)
		sum.StockValue = sum.StockValue.Add(p.Price.Mul(onHand))
		sum.InvestedCost = sum.InvestedCost.Add(p.InvestedCost())
		sum.Desired = sum.Desired.Add(p.Desired)
	}
	if sum.Desired.IsPositive() {
		sum.DesiredPct = Percent(sum.Units.Float() / sum.Desired.Float() * 100)
	}
	return sum
}

// LowStock returns the names of products whose quantity on hand is below
// their minimum level, sorted alphabetically.
func (s *Stock) LowStock() []string {
	var names []string
	for name, p := range s.Products() {
		if p.LowStock() {
			names = append(names, name)
		}
	}
	return names
}

// Suggestion is one line of the purchase-suggestion report.
type Suggestion struct {
	Name     string
	OnHand   Quantity
	Desired  Quantity
	Gap      Quantity // units missing to reach the desired level
	UnitCost Money
	Cost     Money // Gap × UnitCost
}

// Restock lists all products needing purchase, with grand totals.
type Restock struct {
	Items []Suggestion
	Units Quantity // total units missing
	Cost  Money    // total restock investment
}

// Suggestions computes the purchase-suggestion report: every product whose
// quantity on hand is below the desired level, sorted alphabetically.
func (s *Stock) Suggestions() Restock {
	var r Restock
	for name, p := range s.Products() {
		gap := p.PurchaseGap()
		if !gap.IsPositive() {
			continue
		}
		cost := p.PurchaseCost()
		r.Items = append(r.Items, Suggestion{
			Name:     name,
			OnHand:   p.OnHand(),
			Desired:  p.Desired,
			Gap:      gap,
			UnitCost: p.Cost,
			Cost:     cost,
		})
		r.Units = r.Units.Add(gap)
		r.Cost = r.Cost.Add(cost)
	}
	return r
}

// ControlRow is one line of the stock-control report.
type ControlRow struct {
	Name      string
	In        Quantity
	Out       Quantity
	Min       Quantity
	Desired   Quantity
	OnHand    Quantity
	Low       bool
	UnitCost  Money
	UnitPrice Money
}

// Control is the per-product stock-control report with a grand-total row.
type Control struct {
	Rows         []ControlRow
	TotalIn      Quantity
	TotalOut     Quantity
	TotalMin     Quantity
	TotalDesired Quantity
	TotalOnHand  Quantity
}

// Control computes the stock-control report, products sorted alphabetically.
func (s *Stock) Control() Control {
	var c Control
	for name, p := range s.Products() {
		row := ControlRow{
			Name:      name,
			In:        p.TotalIn(),
			Out:       p.TotalOut(),
			Min:       p.Min,
			Desired:   p.Desired,
			OnHand:    p.OnHand(),
			Low:       p.LowStock(),
			UnitCost:  p.Cost,
			UnitPrice: p.Price,
		}
		c.Rows = append(c.Rows, row)
		c.TotalIn = c.TotalIn.Add(row.In)
		c.TotalOut = c.TotalOut.Add(row.Out)
		c.TotalMin = c.TotalMin.Add(row.Min)
		c.TotalDesired = c.TotalDesired.Add(row.Desired)
		c.TotalOnHand = c.TotalOnHand.Add(row.OnHand)
	}
	return c
}

package estoque

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file persists the stock as a single JSON document, compatible with the
// legacy estoque.json layout: top-level keys are product names, each value an
// object with the scalar fields and the two movement arrays. Field names are
// the wire contract and must not change.
//
// Amounts and quantities travel as plain JSON numbers, so the wire structs
// use float64 and the conversion to the decimal-backed domain types happens
// here, at the boundary.

// jinbound is an inbound entry as persisted.
type jinbound struct {
	Date     Date    `json:"data"`
	Type     string  `json:"tipo"`
	Quantity float64 `json:"qty"`
	UnitCost float64 `json:"cost_unit"`
	Total    float64 `json:"total"`
}

// joutbound is an outbound entry as persisted.
type joutbound struct {
	Date      Date    `json:"data"`
	Quantity  float64 `json:"qty"`
	UnitPrice float64 `json:"price_unit"`
	Total     float64 `json:"total"`
}

// jproduct is a product ledger as persisted.
type jproduct struct {
	Min      float64     `json:"min"`
	Desired  float64     `json:"des"`
	Cost     float64     `json:"cost"`
	Price    float64     `json:"price"`
	Inbounds []jinbound  `json:"entradas"`
	Outbound []joutbound `json:"saidas"`
}

func (s *Stock) decode(r io.Reader, currency string) error {
	doc := make(map[string]jproduct)
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	for name, jp := range doc {
		p := &Product{
			Min:     Q(jp.Min),
			Desired: Q(jp.Desired),
			Cost:    M(jp.Cost, currency),
			Price:   M(jp.Price, currency),
		}
		for _, je := range jp.Inbounds {
			p.inbounds = append(p.inbounds, Inbound{
				Date: je.Date,
				// Keep legacy free-text types as found; only new writes are
				// restricted to the closed set.
				Type:     MovementType(je.Type),
				Quantity: Q(je.Quantity),
				UnitCost: M(je.UnitCost, currency),
				Total:    M(je.Total, currency),
			})
		}
		for _, je := range jp.Outbound {
			p.outbounds = append(p.outbounds, Outbound{
				Date:      je.Date,
				Quantity:  Q(je.Quantity),
				UnitPrice: M(je.UnitPrice, currency),
				Total:     M(je.Total, currency),
			})
		}
		s.products[Normalize(name)] = p
	}
	return nil
}

// DecodeStock decodes a stock document from r. Amounts get the given
// currency, since the wire format stores bare numbers. A document that cannot
// be parsed yields ErrCorruptData.
func DecodeStock(r io.Reader, currency string) (*Stock, error) {
	s := NewStock()
	if err := s.decode(r, currency); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeStock writes the full stock document to w, pretty-printed with the
// same 4-space indent as the legacy files. Product keys come out sorted,
// movement arrays keep their insertion order.
func EncodeStock(w io.Writer, s *Stock) error {
	doc := make(map[string]jproduct, s.Len())
	for name, p := range s.Products() {
		jp := jproduct{
			Min:      p.Min.Float(),
			Desired:  p.Desired.Float(),
			Cost:     p.Cost.Float(),
			Price:    p.Price.Float(),
			Inbounds: make([]jinbound, 0, len(p.inbounds)),
			Outbound: make([]joutbound, 0, len(p.outbounds)),
		}
		for _, e := range p.inbounds {
			jp.Inbounds = append(jp.Inbounds, jinbound{
				Date:     e.Date,
				Type:     string(e.Type),
				Quantity: e.Quantity.Float(),
				UnitCost: e.UnitCost.Float(),
				Total:    e.Total.Float(),
			})
		}
		for _, e := range p.outbounds {
			jp.Outbound = append(jp.Outbound, joutbound{
				Date:      e.Date,
				Quantity:  e.Quantity.Float(),
				UnitPrice: e.UnitPrice.Float(),
				Total:     e.Total.Float(),
			})
		}
		doc[name] = jp
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot encode stock document: %w", err)
	}
	return nil
}

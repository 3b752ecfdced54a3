package estoque

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// legacyDoc is a stock document in the layout the original spreadsheets were
// exported to. Field names here are the wire contract.
const legacyDoc = `{
    "Xícara Grande": {
        "min": 15,
        "des": 22.5,
        "cost": 14.5,
        "price": 38.0,
        "entradas": [
            {"data": "17/01/2026", "tipo": "Inventário", "qty": 15, "cost_unit": 14.5, "total": 217.5}
        ],
        "saidas": [
            {"data": "05/01/2026", "qty": 15, "price_unit": 38.0, "total": 570.0}
        ]
    }
}`

func TestDecodeStock(t *testing.T) {
	s, err := DecodeStock(strings.NewReader(legacyDoc), "BRL")
	if err != nil {
		t.Fatal(err)
	}

	p := s.Product("Xícara Grande")
	if p == nil {
		t.Fatal("missing product after decode")
	}
	if got, want := p.Min, Q(15); !got.Equal(want) {
		t.Errorf("Min = %s, want %s", got, want)
	}
	if got, want := p.Desired, Q(22.5); !got.Equal(want) {
		t.Errorf("Desired = %s, want %s", got, want)
	}
	if got, want := p.Cost, M(14.5, "BRL"); !got.Equal(want) {
		t.Errorf("Cost = %s, want %s", got, want)
	}

	var in []Inbound
	for e := range p.Inbounds() {
		in = append(in, e)
	}
	if len(in) != 1 {
		t.Fatalf("inbounds = %d, want 1", len(in))
	}
	if in[0].Type != Inventory {
		t.Errorf("Type = %q, want %q", in[0].Type, Inventory)
	}
	if got, want := in[0].Date.String(), "17/01/2026"; got != want {
		t.Errorf("Date = %s, want %s", got, want)
	}
	if got, want := in[0].Total, M(217.5, "BRL"); !got.Equal(want) {
		t.Errorf("Total = %s, want %s", got, want)
	}

	var out []Outbound
	for e := range p.Outbounds() {
		out = append(out, e)
	}
	if len(out) != 1 {
		t.Fatalf("outbounds = %d, want 1", len(out))
	}
	if got, want := out[0].Total, M(570, "BRL"); !got.Equal(want) {
		t.Errorf("Total = %s, want %s", got, want)
	}
}

// TestDecodeFreeTextType checks that legacy free-text movement types survive a
// load unchanged, even though new writes are restricted to the closed set.
func TestDecodeFreeTextType(t *testing.T) {
	doc := `{"Caneca Teste": {"min": 1, "des": 2, "cost": 1, "price": 2,
		"entradas": [{"data": "17/01/2026", "tipo": "Ajuste Manual", "qty": 1, "cost_unit": 1, "total": 1}],
		"saidas": []}}`
	s, err := DecodeStock(strings.NewReader(doc), "BRL")
	if err != nil {
		t.Fatal(err)
	}
	for e := range s.Product("Caneca Teste").Inbounds() {
		if got, want := e.Type, MovementType("Ajuste Manual"); got != want {
			t.Errorf("Type = %q, want %q", got, want)
		}
	}
}

func TestDecodeCorrupt(t *testing.T) {
	for _, doc := range []string{
		"{not json",
		`{"Caneca": {"min": "dez"}}`,
		`{"Caneca": {"entradas": [{"data": "not a date"}]}}`,
	} {
		if _, err := DecodeStock(strings.NewReader(doc), "BRL"); !errors.Is(err, ErrCorruptData) {
			t.Errorf("DecodeStock(%q) error = %v, want ErrCorruptData", doc, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := SeedStock("BRL")

	var buf bytes.Buffer
	if err := EncodeStock(&buf, s); err != nil {
		t.Fatal(err)
	}

	// Pretty-printed with the legacy 4-space indent.
	if !strings.Contains(buf.String(), "\n    \"Xícara Grande\"") {
		t.Errorf("document is not indented with 4 spaces:\n%s", buf.String())
	}

	back, err := DecodeStock(&buf, "BRL")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := back.Len(), s.Len(); got != want {
		t.Fatalf("Len after round trip = %d, want %d", got, want)
	}

	for name, p := range s.Products() {
		q := back.Product(name)
		if q == nil {
			t.Fatalf("missing product %q after round trip", name)
		}
		if !q.Min.Equal(p.Min) || !q.Desired.Equal(p.Desired) || !q.Cost.Equal(p.Cost) || !q.Price.Equal(p.Price) {
			t.Errorf("product %q scalars changed in round trip", name)
		}
		if !q.OnHand().Equal(p.OnHand()) {
			t.Errorf("product %q OnHand = %s, want %s", name, q.OnHand(), p.OnHand())
		}
		if !q.InvestedCost().Equal(p.InvestedCost()) {
			t.Errorf("product %q InvestedCost = %s, want %s", name, q.InvestedCost(), p.InvestedCost())
		}
	}
}

// TestEncodeKeepsMovementOrder checks insertion order survives the round
// trip; histories are never date-sorted.
func TestEncodeKeepsMovementOrder(t *testing.T) {
	s := NewStock()
	s.Register("Caneca Teste", Q(10), Q(20), M(5, "BRL"), M(12, "BRL"))
	dates := []string{"20/01/2026", "05/01/2026", "15/01/2026"}
	for _, d := range dates {
		if _, err := s.RecordInbound("Caneca Teste", Purchase, Q(1), M(5, "BRL"), MustParseDate(d)); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeStock(&buf, s); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeStock(&buf, "BRL")
	if err != nil {
		t.Fatal(err)
	}

	i := 0
	for e := range back.Product("Caneca Teste").Inbounds() {
		if got := e.Date.String(); got != dates[i] {
			t.Errorf("inbound[%d] = %s, want %s", i, got, dates[i])
		}
		i++
	}
}

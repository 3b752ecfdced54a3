package estoque

import (
	"errors"
	"path/filepath"
	"testing"
)

// TestSessionPersistsEachMutation checks the load-at-start,
// save-after-each-mutation contract: a second session opened on the same file
// sees every successful write of the first.
func TestSessionPersistsEachMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estoque.json")

	sess, err := Open(path, "BRL")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := sess.Register("Caneca Teste", Q(10), Q(20), M(5, "BRL"), M(12, "BRL")); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.RecordInbound("Caneca Teste", Purchase, Q(30), M(5, "BRL"), Date{}); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.RecordOutbound("Caneca Teste", Q(10), M(12, "BRL"), Date{}); err != nil {
		t.Fatal(err)
	}

	other, err := Open(path, "BRL")
	if err != nil {
		t.Fatal(err)
	}
	p := other.Stock().Product("Caneca Teste")
	if p == nil {
		t.Fatal("mutations were not persisted")
	}
	if got, want := p.OnHand(), Q(20); !got.Equal(want) {
		t.Errorf("OnHand in a fresh session = %s, want %s", got, want)
	}
}

// TestSessionRejectedMutationNotSaved checks a failed operation leaves the
// document untouched on disk.
func TestSessionRejectedMutationNotSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estoque.json")

	sess, err := Open(path, "BRL")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sess.Register("Caneca Teste", Q(10), Q(20), M(5, "BRL"), M(12, "BRL")); err != nil {
		t.Fatal(err)
	}

	if _, err := sess.RecordOutbound("Caneca Teste", Q(5), M(12, "BRL"), Date{}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("overdraw error = %v, want ErrInvalidQuantity", err)
	}

	other, err := Open(path, "BRL")
	if err != nil {
		t.Fatal(err)
	}
	p := other.Stock().Product("Caneca Teste")
	if got := p.TotalOut(); !got.IsZero() {
		t.Errorf("rejected outbound reached disk, TotalOut = %s", got)
	}
}

func TestSessionCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estoque.json")
	sess, err := Open(path, "USD")
	if err != nil {
		t.Fatal(err)
	}
	if got := sess.Currency(); got != "USD" {
		t.Errorf("Currency = %q, want %q", got, "USD")
	}
	if got := sess.Stock().Product("Xícara Grande").Cost.Currency(); got != "USD" {
		t.Errorf("seed amounts currency = %q, want %q", got, "USD")
	}
}

package estoque

import "errors"

// Sentinel errors returned by ledger operations and the store. Callers match
// them with errors.Is; the wrapped message carries the specifics.
var (
	// ErrInvalidQuantity reports a non-positive quantity, or an outbound
	// movement larger than the quantity on hand.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownProduct reports an operation against a product name that was
	// never registered.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrCorruptData reports a stock document that exists but cannot be
	// parsed. It is never silently replaced by the seed dataset.
	ErrCorruptData = errors.New("corrupt stock document")

	// ErrInvalidInput reports non-numeric text where a number was required.
	// It is raised by interactive surfaces, not by the core operations.
	ErrInvalidInput = errors.New("invalid input")
)

// Package estoque provides the core types and functions to manage a small
// shop's stock ledger. It is designed to be local-first and auditable: the
// whole state of a product is its movement history, and every derived figure
// is recomputed from that history on demand.
//
// The core functionalities include:
//   - Ledger Model: products keyed by name, each holding an append-only list
//     of inbound (purchase, inventory count, return) and outbound (sale)
//     movements with their unit economics frozen at record time.
//   - Derived Aggregates: quantity on hand, cumulative invested cost,
//     low-stock detection, and purchase suggestions sized by the gap between
//     the desired level and the quantity on hand.
//   - Ledger Operations: validate-then-append mutations (register a product,
//     record an inbound or outbound movement) that reject invalid movements
//     wholesale, never partially.
//   - Data Persistence: a single human-readable JSON document, loaded at
//     start and rewritten atomically after each mutation, compatible with the
//     legacy estoque.json layout.
//
// This package serves as the foundational logic for the `estoque`
// command-line tool; both its dashboard reports and its interactive menu are
// thin adapters over this single source of truth.
package estoque

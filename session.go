package estoque

// Session owns a stock for the lifetime of one interaction: load at start,
// persist after each successful mutation. Both presentation surfaces go
// through a Session so neither holds ambient state of its own.
//
// If a save fails, the error surfaces after the in-memory mutation has
// already happened; in-memory and on-disk state then diverge until the next
// successful save. That is an accepted risk at this scale.
type Session struct {
	path     string
	currency string
	stock    *Stock
}

// Open loads the stock document at path and returns a session bound to it.
func Open(path, currency string) (*Session, error) {
	stock, err := LoadStock(path, currency)
	if err != nil {
		return nil, err
	}
	return &Session{path: path, currency: currency, stock: stock}, nil
}

// Stock exposes the in-memory stock for read-only reporting.
func (s *Session) Stock() *Stock { return s.stock }

// Currency returns the currency amounts are denominated in.
func (s *Session) Currency() string { return s.currency }

// Register upserts a product and persists the stock.
func (s *Session) Register(name string, min, desired Quantity, cost, price Money) (string, error) {
	normalized := s.stock.Register(name, min, desired, cost, price)
	return normalized, SaveStock(s.path, s.stock)
}

// RecordInbound appends an inbound movement and persists the stock.
func (s *Session) RecordInbound(name string, typ MovementType, qty Quantity, unitCost Money, on Date) (Inbound, error) {
	e, err := s.stock.RecordInbound(name, typ, qty, unitCost, on)
	if err != nil {
		return Inbound{}, err
	}
	return e, SaveStock(s.path, s.stock)
}

// RecordOutbound appends an outbound movement and persists the stock.
func (s *Session) RecordOutbound(name string, qty Quantity, unitPrice Money, on Date) (Outbound, error) {
	e, err := s.stock.RecordOutbound(name, qty, unitPrice, on)
	if err != nil {
		return Outbound{}, err
	}
	return e, SaveStock(s.path, s.stock)
}

package estoque

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a count of stock units. Levels and movements may be fractional
// (e.g. a desired level of 22.5), so it wraps a decimal rather than an int.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool              { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool           { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool        { return q.value.GreaterThan(p.value) }
func (q Quantity) GreaterThanOrEqual(p Quantity) bool { return q.value.GreaterThanOrEqual(p.value) }
func (q Quantity) Add(p Quantity) Quantity            { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity            { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsPositive() bool                   { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool                   { return q.value.IsNegative() }
func (q Quantity) IsZero() bool                       { return q.value.IsZero() }
func (q Quantity) String() string                     { return q.value.String() }

// Float returns the quantity as a float64 for the persistence layer, which
// writes plain JSON numbers like the legacy files.
func (q Quantity) Float() float64 { return q.value.InexactFloat64() }

package sim

// Optional holds a collection entry that may be absent.
// Absent entries are carried through every transition unchanged.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent entry.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

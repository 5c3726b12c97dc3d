package ui

// Source is either a static value or a provider consulted every frame. A
// provider that fails, or a missing provider, resolves to the static value.
type Source[T any] struct {
	value    T
	provider func() (T, error)
}

// Static returns a Source that always resolves to v.
func Static[T any](v T) Source[T] {
	return Source[T]{value: v}
}

// Dynamic returns a Source backed by provider, falling back to v whenever
// provider returns an error.
func Dynamic[T any](v T, provider func() (T, error)) Source[T] {
	return Source[T]{value: v, provider: provider}
}

// Func adapts an infallible provider.
func Func[T any](v T, provider func() T) Source[T] {
	if provider == nil {
		return Static(v)
	}
	return Dynamic(v, func() (T, error) { return provider(), nil })
}

// Resolve returns this frame's value.
func (s Source[T]) Resolve() T {
	if s.provider == nil {
		return s.value
	}
	v, err := s.provider()
	if err != nil {
		return s.value
	}
	return v
}

// Default returns the static value regardless of any provider.
func (s Source[T]) Default() T {
	return s.value
}

// isDynamic reports whether a provider is bound.
func (s Source[T]) isDynamic() bool {
	return s.provider != nil
}

// WithDefault returns a copy of s with its static value replaced.
func (s Source[T]) WithDefault(v T) Source[T] {
	s.value = v
	return s
}

package dictionary

// Equal reports whether a and b hold the same keys mapped to equal values.
// Order is ignored. A nil dictionary equals an empty one.
func Equal[K, V comparable](a, b *Dictionary[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

func EqualFunc[K comparable, V1, V2 any](a *Dictionary[K, V1], b *Dictionary[K, V2], eq func(V1, V2) bool) bool {
	if a.size() != b.size() {
		return false
	}

	if a == nil || b == nil {
		return true
	}

	for _, e := range a.entries {
		v, ok := b.Get(e.Key)
		if !ok || !eq(e.Value, v) {
			return false
		}
	}

	return true
}

func (d *Dictionary[K, V]) size() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

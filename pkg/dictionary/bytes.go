package dictionary

// GetBytes looks up a string-keyed dictionary with a byte slice, without
// the caller building a string key first.
func GetBytes[K ~string, V any](d *Dictionary[K, V], key []byte) (V, bool) {
	if i, ok := d.index[K(key)]; ok {
		return d.entries[i].Value, true
	}

	var zero V
	return zero, false
}

func ContainsBytes[K ~string, V any](d *Dictionary[K, V], key []byte) bool {
	_, ok := d.index[K(key)]
	return ok
}

package dictionary

import "iter"

// Collect builds a dictionary from seq. Unlike FromPairs, an empty sequence
// is allowed and yields an empty dictionary.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Dictionary[K, V] {
	d := New[K, V]()

	for k, v := range seq {
		d.Insert(k, v)
	}

	return d
}

func CollectPairs[K comparable, V any](seq iter.Seq[Pair[K, V]]) *Dictionary[K, V] {
	d := New[K, V]()

	for p := range seq {
		d.Insert(p.Key, p.Value)
	}

	return d
}

// CollectPairRefs copies the pairs seq points to. Nil pointers are skipped.
func CollectPairRefs[K comparable, V any](seq iter.Seq[*Pair[K, V]]) *Dictionary[K, V] {
	d := New[K, V]()

	for p := range seq {
		if p == nil {
			continue
		}

		d.Insert(p.Key, p.Value)
	}

	return d
}

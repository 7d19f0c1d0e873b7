package dictionary

import (
	"fmt"
	"strings"
)

// String renders the dictionary as {k1: v1, k2: v2} in iteration order.
func (d *Dictionary[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')

	for i, e := range d.entries {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%v: %v", e.Key, e.Value)
	}

	b.WriteByte('}')
	return b.String()
}

// GoString makes %#v print the same thing as %v.
func (d *Dictionary[K, V]) GoString() string {
	return d.String()
}

package main

import (
	"fmt"
	"slices"

	"github.com/UTD-JLA/dictionary/pkg/dictionary"
)

func main() {
	tuples := []dictionary.Pair[uint8, uint8]{{Key: 1, Value: 3}, {Key: 5, Value: 7}}
	d := dictionary.CollectPairs(slices.Values(tuples))

	tuplesArray := []*dictionary.Pair[uint8, [5]uint8]{
		{Key: 2, Value: [5]uint8{3, 4, 5, 6, 7}},
		{Key: 8, Value: [5]uint8{9, 10, 11, 12, 13}},
	}
	dArray := dictionary.CollectPairRefs(slices.Values(tuplesArray))

	v, _ := d.Get(5)
	fmt.Println(v)

	arr, _ := dArray.Get(8)
	fmt.Println(arr)
}

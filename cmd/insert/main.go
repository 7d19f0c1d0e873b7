package main

import (
	"fmt"

	"github.com/UTD-JLA/dictionary/pkg/dictionary"
)

func main() {
	d := dictionary.New[uint8, uint8]()
	d.Insert(1, 2)
	d.Insert(3, 4)

	v, _ := d.Get(3)
	fmt.Println(v)
}

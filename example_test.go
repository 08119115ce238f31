package bimap_test

import (
	"errors"
	"fmt"
	"slices"

	bimap "github.com/nstoddard/bidirectional-map"
)

func Example() {
	m := bimap.New[int, string]()
	m.Insert(1, "a")
	m.Insert(2, "b")

	v, _ := m.GetForward(1)
	k, _ := m.GetReverse("b")
	fmt.Println(m.Len(), v, k)

	fmt.Println(m.RemoveForward(1), m.Len(), m.ContainsReverse("a"))
	// Output:
	// 2 a 2
	// a 1 false
}

// Unit mirrors a typical enum whose names travel over the wire.
type Unit int8

const (
	UnitNone Unit = iota
	UnitNano
	UnitByte
)

var unitNames = bimap.FromMap(map[Unit]string{
	UnitNone: "NONE",
	UnitNano: "NANO",
	UnitByte: "BYTE",
})

func ExampleFromMap() {
	name, _ := unitNames.GetForward(UnitNano)
	unit, ok := unitNames.GetReverse("BYTE")
	fmt.Println(name, unit == UnitByte, ok)

	_, ok = unitNames.GetReverse("PARSEC")
	fmt.Println(ok)
	// Output:
	// NANO true true
	// false
}

func ExampleMap_TryInsert() {
	users := bimap.New[int, string]()
	users.Insert(1, "alice")

	err := users.TryInsert(2, "alice")
	fmt.Println(errors.Is(err, bimap.ErrDuplicate))
	fmt.Println(err)
	// Output:
	// true
	// bimap: value alice already present (inserting key 2)
}

func ExampleMap_All() {
	m := bimap.FromMap(map[string]int{"x": 1, "y": 2, "z": 3})
	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fmt.Println(keys)
	// Output:
	// [x y z]
}

func ExampleGetReverseAs() {
	m := bimap.FromMap(map[int]string{200: "OK", 404: "Not Found"})
	buf := []byte("Not Found")
	code, ok := bimap.GetReverseAs(m, buf, bimap.BytesAsString(bimap.DefaultSeed()))
	fmt.Println(code, ok)
	// Output:
	// 404 true
}

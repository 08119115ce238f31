package bimap

import (
	"fmt"
	"strconv"
)

// Side identifies one of the two indexes of a Map.
type Side int8

const (
	// Forward is the key to value index
	Forward Side = iota
	// Reverse is the value to key index
	Reverse
)

var sideNames = FromMap(map[Side]string{
	Forward: "forward",
	Reverse: "reverse",
})

// String returns the name of the side, or its number if the side is unknown.
func (s Side) String() string {
	if name, ok := sideNames.GetForward(s); ok {
		return name
	}
	return strconv.Itoa(int(s))
}

// ParseSide parses the name of a side.
func ParseSide(str string) (Side, error) {
	if side, ok := sideNames.GetReverse(str); ok {
		return side, nil
	}
	return Forward, fmt.Errorf("unknown Side %q", str)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s Side) MarshalText() ([]byte, error) {
	if name, ok := sideNames.GetForward(s); ok {
		return []byte(name), nil
	}
	return nil, fmt.Errorf("unknown Side %d", int(s))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Side) UnmarshalText(text []byte) error {
	side, ok := GetReverseAs(sideNames, text, BytesAsString(defaultSeed))
	if !ok {
		return fmt.Errorf("unknown Side %q", text)
	}
	*s = side
	return nil
}

// Package polybius - core types and constants for the substitution square.
package polybius

// Size is the side length of the square.
const Size = 5

// Letters is the number of cells (and alphabet letters) in the square.
const Letters = Size * Size

// Alphabet is the default 25-letter alphabet, the Latin alphabet with
// "J" removed ("I" stands for both).
const Alphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// Coord addresses one cell of the square. Row and Col are both in
// [0, Size). Coord is a plain value; compare with == and pass by value.
type Coord struct {
	Row, Col int
}

// InRange reports whether the coordinate addresses a real cell.
// Complexity: O(1).
func (c Coord) InRange() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Square is an immutable 5×5 letter grid with O(1) lookups in both
// directions. Build one with New or NewRandom; a zero Square is not
// usable. Safe for concurrent use once constructed.
type Square struct {
	// grid holds the 25 letters in row-major order.
	grid [Letters]byte
	// index maps 'A'..'Z' (offset by 'A') to a row-major cell index,
	// or -1 when the letter does not occur. With a duplicated key
	// letter, index keeps the first occurrence only.
	index ['Z' - 'A' + 1]int8
}

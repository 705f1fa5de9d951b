package polybius

import "strings"

// New constructs a Square from a caller-supplied key.
//
// The key is uppercased, every "J" is deleted (a Polybius key should
// simply not contain one — message-side normalization maps J to I
// independently), and all remaining non-letter bytes are stripped.
// The cleaned key must hold exactly 25 letters; otherwise New returns
// ErrSquareSize and no square is produced.
//
// Repeated letters in a 25-letter cleaned key are accepted; see the
// package documentation for the resulting lookup behavior.
//
// Complexity: O(k) over the key length.
func New(key string) (*Square, error) {
	cleaned := cleanKey(key)
	if len(cleaned) != Letters {
		return nil, ErrSquareSize
	}

	return build(cleaned), nil
}

// cleanKey uppercases the key, deletes "J" and strips every byte that
// is not an ASCII letter. Complexity: O(k).
func cleanKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' || ch == 'J' {
			continue
		}
		b.WriteByte(ch)
	}

	return b.String()
}

// build assembles the grid and the reverse index from a 25-letter
// string. The index records only the first occurrence of each letter,
// which is what preserves the duplicate-key quirk.
func build(letters string) *Square {
	sq := &Square{}
	for i := range sq.index {
		sq.index[i] = -1
	}
	for i := 0; i < Letters; i++ {
		ch := letters[i]
		sq.grid[i] = ch
		if sq.index[ch-'A'] < 0 {
			sq.index[ch-'A'] = int8(i)
		}
	}

	return sq
}

// CoordOf returns the cell of letter b, an uppercase ASCII letter.
// For a letter absent from the square (possible only when upstream
// normalization was bypassed, or for "J" on the default alphabet) it
// returns ErrLetterNotFound.
//
// Complexity: O(1).
func (sq *Square) CoordOf(b byte) (Coord, error) {
	if b < 'A' || b > 'Z' || sq.index[b-'A'] < 0 {
		return Coord{}, ErrLetterNotFound
	}
	idx := int(sq.index[b-'A'])

	return Coord{Row: idx / Size, Col: idx % Size}, nil
}

// LetterAt returns the letter stored at c, or ErrCoordRange when c
// lies outside the grid. Coordinates produced by the cipher transforms
// are always in range, so the error path only guards direct callers.
//
// Complexity: O(1).
func (sq *Square) LetterAt(c Coord) (byte, error) {
	if !c.InRange() {
		return 0, ErrCoordRange
	}

	return sq.grid[c.Row*Size+c.Col], nil
}

// Row returns the i-th row of the grid as a 5-letter string.
// Panics are avoided: an out-of-range i yields the empty string.
func (sq *Square) Row(i int) string {
	if i < 0 || i >= Size {
		return ""
	}

	return string(sq.grid[i*Size : (i+1)*Size])
}

// String renders the grid as five space-separated rows, one per line.
func (sq *Square) String() string {
	var b strings.Builder
	b.Grow(Letters*2 + Size)
	for r := 0; r < Size; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(sq.grid[r*Size+c])
		}
	}

	return b.String()
}

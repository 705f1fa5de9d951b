package polybius_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/bifid/polybius"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullAlphabetKey cleans to the 25-letter default alphabet: the "J" is
// deleted during key cleanup, leaving exactly 25 letters.
const fullAlphabetKey = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TestNew_FullAlphabetKey verifies grid layout and both lookup
// directions for the canonical alphabet square.
func TestNew_FullAlphabetKey(t *testing.T) {
	sq, err := polybius.New(fullAlphabetKey)
	require.NoError(t, err, "26-letter alphabet key must clean to 25 letters")

	assert.Equal(t, "ABCDE", sq.Row(0), "first row")
	assert.Equal(t, "VWXYZ", sq.Row(4), "last row")

	cases := []struct {
		letter byte
		want   polybius.Coord
	}{
		{'A', polybius.Coord{Row: 0, Col: 0}},
		{'H', polybius.Coord{Row: 1, Col: 2}},
		{'K', polybius.Coord{Row: 1, Col: 4}},
		{'Z', polybius.Coord{Row: 4, Col: 4}},
	}
	for _, tc := range cases {
		got, err := sq.CoordOf(tc.letter)
		require.NoError(t, err, "CoordOf(%c)", tc.letter)
		assert.Equal(t, tc.want, got, "CoordOf(%c)", tc.letter)

		back, err := sq.LetterAt(got)
		require.NoError(t, err, "LetterAt(%v)", got)
		assert.Equal(t, tc.letter, back, "LetterAt must invert CoordOf")
	}
}

// TestNew_KeyCleaning checks that case, spacing, punctuation and "J"
// deletion are applied before the 25-letter check.
func TestNew_KeyCleaning(t *testing.T) {
	sq, err := polybius.New("abcde fghij-klmno? pqrst, uvwxyz!!")
	require.NoError(t, err)

	want, err := polybius.New(fullAlphabetKey)
	require.NoError(t, err)
	assert.Equal(t, want.String(), sq.String(), "cleaned key must build the same grid")
}

// TestNew_SquareSize verifies ErrSquareSize for keys that do not clean
// to exactly 25 letters.
func TestNew_SquareSize(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"Short", "short"},
		{"Empty", ""},
		{"OnlyJ", "jjjjj"},
		{"TooLong", "ABCDEFGHIKLMNOPQRSTUVWXYZA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := polybius.New(tc.key)
			assert.ErrorIs(t, err, polybius.ErrSquareSize, "New(%q)", tc.key)
		})
	}
}

// TestNew_DuplicateKeyQuirk documents the permissive contract: a
// 25-letter key with repeats still builds, and lookups resolve a
// repeated letter to its first row-major cell.
func TestNew_DuplicateKeyQuirk(t *testing.T) {
	// 25 letters, "A" twice, no "B".
	sq, err := polybius.New("AACDEFGHIKLMNOPQRSTUVWXYZ")
	require.NoError(t, err, "duplicates within a 25-letter key are permitted")

	got, err := sq.CoordOf('A')
	require.NoError(t, err)
	assert.Equal(t, polybius.Coord{Row: 0, Col: 0}, got, "first occurrence wins")

	second, err := sq.LetterAt(polybius.Coord{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, byte('A'), second, "the duplicate cell still holds the letter")

	_, err = sq.CoordOf('B')
	assert.ErrorIs(t, err, polybius.ErrLetterNotFound, "the displaced letter is absent")
}

// TestCoordOf_Missing verifies ErrLetterNotFound for letters outside
// the square's alphabet.
func TestCoordOf_Missing(t *testing.T) {
	sq, err := polybius.New(fullAlphabetKey)
	require.NoError(t, err)

	for _, b := range []byte{'J', 'a', '1', ' ', 0} {
		_, err = sq.CoordOf(b)
		assert.ErrorIs(t, err, polybius.ErrLetterNotFound, "CoordOf(%q)", string(b))
	}
}

// TestLetterAt_Range verifies ErrCoordRange outside the 5×5 grid.
func TestLetterAt_Range(t *testing.T) {
	sq, err := polybius.New(fullAlphabetKey)
	require.NoError(t, err)

	bad := []polybius.Coord{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: polybius.Size, Col: 0},
		{Row: 0, Col: polybius.Size},
	}
	for _, c := range bad {
		_, err = sq.LetterAt(c)
		assert.ErrorIs(t, err, polybius.ErrCoordRange, "LetterAt(%v)", c)
	}
}

// TestNewRandom_Deterministic asserts the seed policy: equal seeds
// produce identical squares, and a nil RNG equals the seed==0 stream.
func TestNewRandom_Deterministic(t *testing.T) {
	a := polybius.NewRandom(polybius.RNGFromSeed(42))
	b := polybius.NewRandom(polybius.RNGFromSeed(42))
	assert.Equal(t, a.String(), b.String(), "same seed must yield the same square")

	nilRNG := polybius.NewRandom(nil)
	zeroSeed := polybius.NewRandom(polybius.RNGFromSeed(0))
	assert.Equal(t, zeroSeed.String(), nilRNG.String(), "nil RNG follows the seed==0 policy")
}

// TestNewRandom_Validity checks that a random square is a permutation
// of the default alphabet: 25 distinct letters, no "J".
func TestNewRandom_Validity(t *testing.T) {
	sq := polybius.NewRandom(polybius.RNGFromSeed(7))

	var letters []byte
	for r := 0; r < polybius.Size; r++ {
		letters = append(letters, sq.Row(r)...)
	}
	require.Len(t, letters, polybius.Letters)

	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	assert.Equal(t, polybius.Alphabet, string(letters), "random square must permute the default alphabet")
}

// TestCoord_InRange covers the boundary cells of the grid.
func TestCoord_InRange(t *testing.T) {
	assert.True(t, polybius.Coord{Row: 0, Col: 0}.InRange())
	assert.True(t, polybius.Coord{Row: polybius.Size - 1, Col: polybius.Size - 1}.InRange())
	assert.False(t, polybius.Coord{Row: polybius.Size, Col: 0}.InRange())
	assert.False(t, polybius.Coord{Row: 0, Col: -1}.InRange())
}

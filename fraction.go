package bifid

import "github.com/katalvlaran/bifid/polybius"

// fractionate applies the Bifid mixing step to the coordinates of one
// period.
//
// Outline, for n input coordinates:
//  1. Collect the n row values, in order, then the n column values.
//  2. Concatenate rows‖columns into a flat list of 2n integers.
//  3. Re-pair the flat list two at a time into n output coordinates.
//
// Example:
//
//	[(3,2) (4,1)] → rows [3 4], cols [2 1] → [3 4 2 1] → [(3,4) (2,1)]
//
// This interleaves each letter's row with a row or column drawn from
// elsewhere in the period, diffusing the substitution across position.
//
// Complexity: O(n) time, O(n) memory.
func fractionate(coords []polybius.Coord) []polybius.Coord {
	n := len(coords)
	flat := make([]int, 0, 2*n)
	for _, c := range coords {
		flat = append(flat, c.Row)
	}
	for _, c := range coords {
		flat = append(flat, c.Col)
	}

	out := make([]polybius.Coord, n)
	for i := 0; i < n; i++ {
		out[i] = polybius.Coord{Row: flat[2*i], Col: flat[2*i+1]}
	}

	return out
}

// defractionate inverts fractionate for one period.
//
// Outline, for n input coordinates:
//  1. Flatten positionally into 2n integers: row, col, row, col, …
//     (not the rows‖columns split fractionate uses).
//  2. Split the flat list at its midpoint into two halves of length n.
//  3. Pair the halves index by index: out[i] = (first[i], second[i]).
//
// Example:
//
//	[(3,4) (2,1)] → [3 4 2 1] → halves [3 4] / [2 1] → [(3,2) (4,1)]
//
// fractionate and defractionate are mutual inverses on coordinate
// sequences of equal length, which is why period segmentation must be
// identical on the encrypt and decrypt paths.
//
// Complexity: O(n) time, O(n) memory.
func defractionate(coords []polybius.Coord) []polybius.Coord {
	n := len(coords)
	flat := make([]int, 0, 2*n)
	for _, c := range coords {
		flat = append(flat, c.Row, c.Col)
	}

	first, second := flat[:n], flat[n:]
	out := make([]polybius.Coord, n)
	for i := 0; i < n; i++ {
		out[i] = polybius.Coord{Row: first[i], Col: second[i]}
	}

	return out
}

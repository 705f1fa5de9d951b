package polybius

import "errors"

var (
	// ErrSquareSize indicates the cleaned key does not hold exactly 25 letters.
	ErrSquareSize = errors.New("polybius: square must contain exactly 25 letters")
	// ErrLetterNotFound indicates a letter with no cell in the square.
	ErrLetterNotFound = errors.New("polybius: letter not present in square")
	// ErrCoordRange indicates a coordinate outside the 5×5 grid.
	ErrCoordRange = errors.New("polybius: coordinate out of range")
)

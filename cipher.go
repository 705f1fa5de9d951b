package bifid

import (
	"fmt"

	"github.com/katalvlaran/bifid/polybius"
)

// New constructs a Cipher from opts.
//
// A non-empty opts.Key is cleaned and must resolve to exactly 25
// letters (polybius.ErrSquareSize otherwise). An empty Key draws a
// random square from opts.Rand, nil meaning the deterministic default
// stream. opts.Period must be ≥ 1; New returns ErrBadPeriod for zero
// or negative values rather than leaving the behavior undefined.
//
// Complexity: O(len(Key)) time.
func New(opts Options) (*Cipher, error) {
	if opts.Period < 1 {
		return nil, ErrBadPeriod
	}

	var (
		sq  *polybius.Square
		err error
	)
	if opts.Key == "" {
		sq = polybius.NewRandom(opts.Rand)
	} else if sq, err = polybius.New(opts.Key); err != nil {
		return nil, err
	}

	return &Cipher{square: sq, period: opts.Period}, nil
}

// Encrypt enciphers msg.
//
// The message is normalized with Clean, split into consecutive
// period-sized blocks (the final block keeps the remainder, 1..period
// letters, unpadded), each block is fractionated independently, and
// the block outputs are concatenated. The ciphertext has exactly
// len(Clean(msg)) letters; Encrypt of the empty (or all-stripped)
// message is "".
//
// Encrypt never fails for ordinary input: normalization guarantees
// every letter reaching the square lookup is in its alphabet. An error
// therefore signals a contract violation, not a recoverable condition.
//
// Complexity: O(len(msg)) time, O(period) extra memory.
func (c *Cipher) Encrypt(msg string) (string, error) {
	return c.transform(Clean(msg), fractionate)
}

// Decrypt deciphers msg, mirroring Encrypt with the inverse transform.
//
// Decrypt normalizes its input the same way Encrypt does. For a
// ciphertext produced by Encrypt this is a no-op (the text is already
// clean), and it lets callers pass ciphertext that picked up spacing
// or punctuation in transit. The round-trip contract is
//
//	Decrypt(Encrypt(m)) == Clean(m)
//
// for any message m and any (square, period) pair.
//
// Complexity: O(len(msg)) time, O(period) extra memory.
func (c *Cipher) Decrypt(msg string) (string, error) {
	return c.transform(Clean(msg), defractionate)
}

// transform runs the period-wise pipeline shared by Encrypt and
// Decrypt: segment the clean message, map each block's letters to
// coordinates, mix with fn, and map the result back to letters.
func (c *Cipher) transform(clean string, fn func([]polybius.Coord) []polybius.Coord) (string, error) {
	out := make([]byte, 0, len(clean))
	coords := make([]polybius.Coord, 0, c.period)

	for start := 0; start < len(clean); start += c.period {
		end := start + c.period
		if end > len(clean) {
			end = len(clean)
		}
		block := clean[start:end]

		coords = coords[:0]
		for i := 0; i < len(block); i++ {
			cd, err := c.square.CoordOf(block[i])
			if err != nil {
				return "", fmt.Errorf("bifid: block %q: %w", block, err)
			}
			coords = append(coords, cd)
		}

		for _, cd := range fn(coords) {
			ch, err := c.square.LetterAt(cd)
			if err != nil {
				return "", fmt.Errorf("bifid: block %q: %w", block, err)
			}
			out = append(out, ch)
		}
	}

	return string(out), nil
}

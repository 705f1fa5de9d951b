// Package bifid - options and engine types for the Bifid cipher.
package bifid

import (
	"math/rand"

	"github.com/katalvlaran/bifid/polybius"
)

// DefaultPeriod is the classic Bifid block length used when Options
// leaves Period at its default.
const DefaultPeriod = 5

// Options configures a Cipher.
//
// Fields:
//   - Key    — keyword for the Polybius square. Empty means a random
//     square drawn from Rand.
//   - Period — block length over which fractionation mixes coordinates.
//     Must be ≥ 1.
//   - Rand   — RNG for random-square construction; only consulted when
//     Key is empty. Nil means the deterministic default stream
//     (polybius.RNGFromSeed seed==0 policy).
//
// Example:
//
//	opts := bifid.DefaultOptions()
//	opts.Key = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
//
//	c, err := bifid.New(opts)
//	if err != nil {
//	  // handle ErrBadPeriod or polybius.ErrSquareSize
//	}
//	ct, err := c.Encrypt("hello, how are you")
type Options struct {
	Key    string
	Period int
	Rand   *rand.Rand
}

// DefaultOptions returns Options with the classic defaults: no keyword
// (random square), Period=DefaultPeriod, deterministic default RNG.
func DefaultOptions() Options {
	return Options{Period: DefaultPeriod}
}

// Cipher is a Bifid engine: one Polybius square plus one period
// length, both fixed at construction. Cipher carries no per-message
// state, so any number of goroutines may call Encrypt and Decrypt on
// the same instance concurrently.
type Cipher struct {
	square *polybius.Square
	period int
}

// Square returns the engine's substitution square (read-only).
func (c *Cipher) Square() *polybius.Square {
	return c.square
}

// Period returns the engine's block length.
func (c *Cipher) Period() int {
	return c.period
}

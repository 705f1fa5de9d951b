// Package bifid implements the classic Bifid cipher — a fractionating
// substitution cipher built on a 5×5 Polybius square and period-wise
// coordinate mixing.
//
// 🚀 What is bifid?
//
//	A small, deterministic cipher engine that brings together:
//		• Polybius square: keyword-built or seeded-random 5×5 grids
//		• Bidirectional letter ↔ (row, col) lookup
//		• Message normalization: case-fold, merge I/J, strip non-letters
//		• Period-wise fractionation (encrypt) and defractionation (decrypt)
//
// ✨ Why choose bifid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – injectable RNG, same seed ⇒ same square
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-safe – squares and ciphers are read-only after construction
//
// The substitution square lives in its own subpackage:
//
//	polybius/ — the 5×5 square, its construction rules and coordinate lookups
//
// Quick ASCII example:
//
//	    A B C D E
//	    F G H I K      "HELLO" → (1,2)(0,4)(2,0)(2,0)(2,3)
//	    L M N O P               → rows‖cols → re-pair → "FNNVD"
//	    Q R S T U
//	    V W X Y Z
//
// ⚙️ Usage:
//
//	c, err := bifid.New(bifid.Options{Key: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", Period: 5})
//	if err != nil {
//	  // handle ErrBadPeriod or polybius.ErrSquareSize
//	}
//	ct, _ := c.Encrypt("hello, how are you") // "FNNVDHVSRBEOYU"
//	pt, _ := c.Decrypt(ct)                   // "HELLOHOWAREYOU"
//
// A thin CLI lives under cmd/bifid for one-shot encryption from a shell.
//
//	go get github.com/katalvlaran/bifid
package bifid

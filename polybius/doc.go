// Package polybius builds and queries the 5×5 substitution square used
// by the Bifid cipher.
//
// What:
//
//   - Square is an immutable 5×5 grid over the 25-letter Latin alphabet
//     ("J" merged into "I").
//   - New builds a square from a caller-supplied keyword; NewRandom
//     shuffles the default alphabet with an injectable RNG.
//   - CoordOf maps a letter to its (row, col) cell; LetterAt inverts it.
//
// Why:
//
//   - Classical ciphers (Bifid, Playfair, straddling checkerboards) all
//     start from the same letter↔coordinate bijection; keeping it in
//     one place keeps the cipher engines small.
//   - The RNG is a parameter, never an ambient source, so tests and
//     callers get reproducible squares from a seed.
//
// Complexity:
//
//   - New / NewRandom: O(k) over the key length, O(1) memory.
//   - CoordOf / LetterAt: O(1) via precomputed indexes.
//
// Errors:
//
//   - ErrSquareSize: the cleaned key does not contain exactly 25 letters.
//   - ErrLetterNotFound: a looked-up letter has no cell in the square.
//   - ErrCoordRange: a coordinate lies outside [0,5)×[0,5).
//
// Construction quirk, kept on purpose: a cleaned 25-letter key with
// repeated letters still builds a square. CoordOf then resolves a
// repeated letter to its first row-major cell, and the square is no
// longer a bijection. Callers who need distinct letters must supply a
// key without repeats.
package polybius

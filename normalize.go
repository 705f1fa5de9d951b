package bifid

import "strings"

// Clean normalizes a message for cipher processing: spaces are
// removed, the remainder is uppercased, every "J" becomes "I", and
// every byte that is not an ASCII letter is stripped. The result
// contains only letters of the 25-letter square alphabet.
//
// Clean is idempotent: Clean(Clean(s)) == Clean(s).
//
// Complexity: O(len(s)) time, O(len(s)) memory.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			continue
		}
		if ch == 'J' {
			ch = 'I'
		}
		b.WriteByte(ch)
	}

	return b.String()
}

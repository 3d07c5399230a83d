// Package caesar implements the fixed-shift letter substitution used to
// "encrypt" diary entries.
//
// Only ASCII letters are shifted; every other byte sequence, including
// multi-byte UTF-8 characters, passes through unchanged.
package caesar

// DefaultShift is the server-side shift and the only key that unlocks entries.
const DefaultShift = 3

const alphabetSize = 26

// Decrypt shifts every ASCII letter in text back by shift positions,
// wrapping around the alphabet and preserving case.
func Decrypt(text string, shift int) string {
	return rotate(text, -shift)
}

// Encrypt shifts every ASCII letter in text forward by shift positions.
// It is the inverse of Decrypt for the same shift.
func Encrypt(text string, shift int) string {
	return rotate(text, shift)
}

func rotate(text string, shift int) string {
	if text == "" {
		return text
	}

	out := []byte(text)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + wrap(int(c-'a')+shift)
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + wrap(int(c-'A')+shift)
		}
	}

	return string(out)
}

// wrap maps any integer into [0, 26).
func wrap(x int) byte {
	return byte(((x % alphabetSize) + alphabetSize) % alphabetSize)
}

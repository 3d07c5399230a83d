package caesar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecrypt_TableTest(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		shift int
		want  string
	}{
		{name: "empty string", text: "", shift: DefaultShift, want: ""},
		{name: "hello world", text: "Khoor Zruog", shift: DefaultShift, want: "Hello World"},
		{name: "wraps lowercase", text: "abc", shift: 3, want: "xyz"},
		{name: "wraps uppercase", text: "ABC", shift: 3, want: "XYZ"},
		{name: "zero shift is identity", text: "Dear diary, 2026!", shift: 0, want: "Dear diary, 2026!"},
		{name: "full cycle is identity", text: "Secret", shift: 26, want: "Secret"},
		{name: "shift larger than alphabet", text: "d", shift: 29, want: "a"},
		{name: "negative shift moves forward", text: "xyz", shift: -3, want: "abc"},
		{name: "digits and punctuation untouched", text: "123 !?.,-", shift: 7, want: "123 !?.,-"},
		{name: "non-ascii letters untouched", text: "Ñandú ünï 日記", shift: 3, want: "Ñxkaú ükï 日記"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decrypt(tt.text, tt.shift))
		})
	}
}

func TestEncrypt_HelloWorld(t *testing.T) {
	assert.Equal(t, "Khoor Zruog", Encrypt("Hello World", DefaultShift))
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Hello World",
		"The quick brown fox jumps over the lazy dog.",
		"ZZZ zzz AAA aaa",
		" !\"#$%&'()*+,-./0123456789:;<=>?@[\\]^_`{|}~",
	}

	for _, shift := range []int{0, 1, DefaultShift, 13, 25, 26, 51, -4} {
		for _, in := range inputs {
			assert.Equal(t, in, Decrypt(Encrypt(in, shift), shift), "shift=%d input=%q", shift, in)
		}
	}
}

func TestDecrypt_NonLettersInvariant(t *testing.T) {
	nonLetters := "0123456789 \t\n!@#$%^&*()[]{}<>/\\|~`'\";:,.?"

	for shift := -30; shift <= 30; shift++ {
		assert.Equal(t, nonLetters, Decrypt(nonLetters, shift), "shift=%d", shift)
	}
}

func TestDecrypt_PreservesLength(t *testing.T) {
	in := "Mixed CASE and lower, ünïcödé too"
	assert.Len(t, Decrypt(in, DefaultShift), len(in))
}

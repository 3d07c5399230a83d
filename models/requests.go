package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SaveRequest is the body of POST /save.
type SaveRequest struct {
	// EncryptedText is the already shifted diary text.
	EncryptedText string `json:"encryptedText"`
}

// DecryptRequest is the body of POST /decrypt.
type DecryptRequest struct {
	// ID identifies the entry to decrypt.
	ID string `json:"id"`

	// Key is the caller-supplied decryption key. It may arrive as any JSON
	// value and is coerced to a number before comparison.
	Key DecryptionKey `json:"key"`
}

// DecryptionKey is a loosely typed numeric key.
//
// Clients send the key as a number, a numeric string or sometimes something
// else entirely. DecryptionKey remembers whether the field was present at all
// and keeps its numeric coercion; values that cannot be read as a number
// become NaN, which never matches any key.
type DecryptionKey struct {
	present bool
	value   float64
}

// NewDecryptionKey returns a present key holding v.
func NewDecryptionKey(v float64) DecryptionKey {
	return DecryptionKey{present: true, value: v}
}

// Present reports whether the key field was supplied.
func (k DecryptionKey) Present() bool {
	return k.present
}

// Number returns the numeric coercion of the key.
func (k DecryptionKey) Number() float64 {
	return k.value
}

// Matches reports whether the key equals want. NaN never matches.
func (k DecryptionKey) Matches(want int) bool {
	return k.present && k.value == float64(want)
}

// UnmarshalJSON implements json.Unmarshaler. It is invoked for every value
// of the field, including JSON null.
func (k *DecryptionKey) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	k.present = true
	k.value = coerceNumber(raw)
	return nil
}

// MarshalJSON implements json.Marshaler. Missing and NaN keys are written
// as null.
func (k DecryptionKey) MarshalJSON() ([]byte, error) {
	if !k.present || math.IsNaN(k.value) || math.IsInf(k.value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(k.value)
}

func coerceNumber(v any) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case float64:
		return value
	case bool:
		if value {
			return 1
		}
		return 0
	case string:
		return coerceString(value)
	case []any:
		switch len(value) {
		case 0:
			return 0
		case 1:
			switch elem := value[0].(type) {
			case nil:
				return 0
			case float64:
				return elem
			case string:
				return coerceString(elem)
			}
		}
	}

	return math.NaN()
}

func coerceString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !isDecimalLiteral(s) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// isDecimalLiteral filters out spellings strconv accepts but clients never
// mean as numbers ("inf", "nan", "1_000", hex floats).
func isDecimalLiteral(s string) bool {
	return !strings.ContainsAny(strings.ToLower(s), "_xnip")
}

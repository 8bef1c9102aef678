// Package crypto contains the classical text ciphers: Caesar, Vigenère,
// columnar transposition and Atbash. Every function is pure and safe for
// concurrent use.
package crypto

// Vigenere is a polyalphabetic substitution keyed by a letter sequence.
// The key cursor advances only on letters of the input, so punctuation and
// spacing do not change the alignment.
type Vigenere struct {
	key []int
}

// NewVigenere validates and normalizes key. Non-letters are dropped and the
// remaining letters are used case-insensitively.
func NewVigenere(key string) (*Vigenere, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return &Vigenere{key: normalizeKey(key)}, nil
}

func (v *Vigenere) Encrypt(plaintext string) string {
	return v.apply(plaintext, 1)
}

func (v *Vigenere) Decrypt(ciphertext string) string {
	return v.apply(ciphertext, -1)
}

func (v *Vigenere) apply(text string, sign int) string {
	cursor := 0
	return mapLetters(text, func(pos int) int {
		k := v.key[cursor%len(v.key)]
		cursor++
		return mod26(pos + sign*k)
	})
}

// VigenereTransform encrypts or decrypts text with key in one call.
func VigenereTransform(text, key string, encrypt bool) (string, error) {
	v, err := NewVigenere(key)
	if err != nil {
		return "", err
	}
	if encrypt {
		return v.Encrypt(text), nil
	}
	return v.Decrypt(text), nil
}

// ValidateKey validates if the key is suitable for Vigenère
func ValidateKey(key string) error {
	if len(key) == 0 {
		return invalidKey("invalid key")
	}
	if len(normalizeKey(key)) == 0 {
		return invalidKey("key must contain at least one letter")
	}
	return nil
}

func normalizeKey(key string) []int {
	shifts := make([]int, 0, len(key))
	for i := 0; i < len(key); i++ {
		if l, ok := classify(key[i]); ok {
			shifts = append(shifts, l.pos)
		}
	}
	return shifts
}

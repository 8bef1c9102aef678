package crypto

// Caesar shifts every ASCII letter of text by shift positions, wrapping
// within its case band. Decryption uses the negated shift. Any integer is
// accepted; only shift mod 26 matters.
func Caesar(text string, shift int, encrypt bool) string {
	s := shift % alphabetSize
	if !encrypt {
		s = -s
	}
	return mapLetters(text, func(pos int) int {
		return mod26(pos + s)
	})
}

// CaesarEncrypt is Caesar(text, shift, true).
func CaesarEncrypt(text string, shift int) string { return Caesar(text, shift, true) }

// CaesarDecrypt is Caesar(text, shift, false).
func CaesarDecrypt(text string, shift int) string { return Caesar(text, shift, false) }

package crypto

// Atbash mirrors every ASCII letter in the alphabet (A<->Z, b<->y), keeping
// case. It is its own inverse.
func Atbash(text string) string {
	return mapLetters(text, func(pos int) int {
		return alphabetSize - 1 - pos
	})
}

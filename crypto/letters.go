package crypto

const alphabetSize = 26

// letter is an ASCII letter reduced to its alphabet position, with its
// original case kept aside so it can be reapplied after the transform.
type letter struct {
	pos   int
	upper bool
}

func classify(b byte) (letter, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return letter{pos: int(b - 'A'), upper: true}, true
	case b >= 'a' && b <= 'z':
		return letter{pos: int(b - 'a'), upper: false}, true
	}
	return letter{}, false
}

// at maps pos back into the letter's original case band.
func (l letter) at(pos int) byte {
	if l.upper {
		return byte('A' + pos)
	}
	return byte('a' + pos)
}

// mod26 returns n modulo 26 in the range [0, 26) for any sign of n.
func mod26(n int) int {
	return (n%alphabetSize + alphabetSize) % alphabetSize
}

// mapLetters applies fn to every letter of text and copies everything else.
// fn receives the alphabet position and returns the new one. It works on
// bytes: ASCII letters never occur inside a multi-byte UTF-8 sequence, so
// other characters and even invalid UTF-8 are copied unchanged.
func mapLetters(text string, fn func(pos int) int) string {
	out := []byte(text)
	for i, b := range out {
		l, ok := classify(b)
		if !ok {
			continue
		}
		out[i] = l.at(fn(l.pos))
	}
	return string(out)
}

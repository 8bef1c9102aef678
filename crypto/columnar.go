package crypto

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Padding fills the unused cells of the last row during encryption.
const Padding = 'X'

// ColumnarEncrypt writes text (whitespace removed) row by row into a grid
// with one column per key entry, pads the last row with Padding, and reads
// the columns in ascending key order. Equal key values keep their original
// left-to-right order.
func ColumnarEncrypt(text string, key []int) (string, error) {
	if len(key) == 0 {
		return "", invalidKey("invalid key")
	}
	units := splitUnits(text)
	cols := len(key)
	rows := ceilDiv(len(units), cols)

	grid := make([][]string, rows)
	next := 0
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			if next < len(units) {
				grid[i][j] = units[next]
				next++
			} else {
				grid[i][j] = string(Padding)
			}
		}
	}

	var b strings.Builder
	b.Grow(len(text) + cols)
	for _, j := range columnOrder(key) {
		for i := 0; i < rows; i++ {
			b.WriteString(grid[i][j])
		}
	}
	return b.String(), nil
}

// ColumnarDecrypt reverses ColumnarEncrypt. Any trailing run of Padding is
// removed from the result, so a message that really ended in 'X' loses
// those letters.
func ColumnarDecrypt(text string, key []int) (string, error) {
	if len(key) == 0 {
		return "", invalidKey("invalid key")
	}
	units := splitUnits(text)
	cols := len(key)
	rows := ceilDiv(len(units), cols)

	// units are never empty, so "" marks a cell the ciphertext was too
	// short to fill
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
	}
	next := 0
	for _, j := range columnOrder(key) {
		for i := 0; i < rows && next < len(units); i++ {
			grid[i][j] = units[next]
			next++
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, row := range grid {
		for _, cell := range row {
			b.WriteString(cell)
		}
	}
	return strings.TrimRight(b.String(), string(Padding)), nil
}

// ColumnarTransform parses keySpec with ParseColumnarKey and encrypts or
// decrypts text with it.
func ColumnarTransform(text, keySpec string, encrypt bool) (string, error) {
	key, err := ParseColumnarKey(keySpec)
	if err != nil {
		return "", err
	}
	if encrypt {
		return ColumnarEncrypt(text, key)
	}
	return ColumnarDecrypt(text, key)
}

// columnOrder returns the column indices sorted by key value, stable on ties.
func columnOrder(key []int) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key[order[a]] < key[order[b]]
	})
	return order
}

// splitUnits cuts text into grid cells: one per UTF-8 character, or one
// per byte of an invalid sequence. Whitespace is dropped.
func splitUnits(text string) []string {
	units := make([]string, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if size > 1 || r != utf8.RuneError {
			if unicode.IsSpace(r) {
				i += size
				continue
			}
		}
		units = append(units, text[i:i+size])
		i += size
	}
	return units
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

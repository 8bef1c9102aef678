package crypto

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCipher is returned by Lookup for names not in the catalogue.
var ErrUnknownCipher = errors.New("unknown cipher")

// Info describes a cipher for display next to its controls.
type Info struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Formula    string `json:"formula"`
	Key        string `json:"key"`
	Security   string `json:"security"`
	Complexity string `json:"complexity"`
	History    string `json:"history"`
}

var catalogue = map[string]Info{
	"caesar": {
		Name:       "caesar",
		Title:      "Caesar",
		Formula:    "E(x) = (x + k) mod 26",
		Key:        "integer shift, meaningful modulo 26",
		Security:   "very low: only 25 useful keys",
		Complexity: "O(n)",
		History:    "used by Julius Caesar around 58 BC",
	},
	"vigenere": {
		Name:       "vigenere",
		Title:      "Vigenère",
		Formula:    "C_i = (M_i + K_i) mod 26, M_i = (C_i - K_i + 26) mod 26",
		Key:        "word of at least one letter; non-letters are ignored",
		Security:   "medium: vulnerable to frequency analysis once the key length is known",
		Complexity: "O(n)",
		History:    "16th century; called indecipherable for about 300 years",
	},
	"columnar": {
		Name:       "columnar",
		Title:      "Columnar transposition",
		Formula:    "write rows, read columns in ascending key order",
		Key:        "comma-separated numbers, one per column (e.g. 3,1,4,2)",
		Security:   "medium: letter frequencies are preserved",
		Complexity: "O(n)",
		History:    "used in both world wars",
	},
	"atbash": {
		Name:       "atbash",
		Title:      "Atbash",
		Formula:    "E(x) = 25 - x",
		Key:        "none",
		Security:   "very low: a single fixed mapping",
		Complexity: "O(n)",
		History:    "originates from the Hebrew alphabet",
	},
}

// Lookup returns the catalogue entry for name, case-insensitively.
func Lookup(name string) (Info, error) {
	info, ok := catalogue[strings.ToLower(name)]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnknownCipher, name)
	}
	return info, nil
}

// Catalogue returns every cipher sorted by name.
func Catalogue() []Info {
	list := make([]Info, 0, len(catalogue))
	for _, info := range catalogue {
		list = append(list, info)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

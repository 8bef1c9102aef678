package crypto

import (
	"strconv"
	"strings"
)

// ParseColumnarKey parses a comma-separated list of integers such as
// "3,1,4,2". Surrounding whitespace on each entry is ignored. An empty
// string or any entry that is not an integer yields ErrInvalidKey.
func ParseColumnarKey(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	key := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, invalidKey("invalid key: use comma-separated numbers (e.g. 3,1,4,2)")
		}
		key = append(key, n)
	}
	return key, nil
}

package crypto

import "errors"

// ErrInvalidKey is returned when a cipher key cannot be used.
var ErrInvalidKey = errors.New("invalid key")

// KeyError carries the reason a key was rejected.
type KeyError struct{ Reason string }

func invalidKey(reason string) error {
	return &KeyError{Reason: reason}
}

// Error returns the human-readable reason.
func (e *KeyError) Error() string { return e.Reason }

// Unwrap returns ErrInvalidKey.
func (e *KeyError) Unwrap() error { return ErrInvalidKey }

// IsInvalidKey reports whether err was caused by a rejected key.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

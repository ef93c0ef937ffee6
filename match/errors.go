package match

import "errors"

var (
	// ErrEmptyPhrase is returned when asked to match a zero-length phrase.
	ErrEmptyPhrase = errors.New("cannot match an empty phrase")
)

package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateKey means the name is already in use.
	ErrDuplicateKey = errors.New("game already exists")
	// ErrNotFound means no game is stored under the name.
	ErrNotFound     = errors.New("game not found")
	// ErrInvalidName means the game's name is empty or whitespace.
	ErrInvalidName  = errors.New("game name must not be blank")
)

// KeyError describes a failed store operation on a single key.
type KeyError struct {
	Op  string
	Key string
	Err error
}

func (e *KeyError) Error() string {
	if strings.TrimSpace(e.Key) == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s with name: %s", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }

// AsKeyError attempts to unwrap an error into a KeyError.
func AsKeyError(err error) (*KeyError, bool) {
	var keyErr *KeyError
	if errors.As(err, &keyErr) {
		return keyErr, true
	}
	return nil, false
}

func duplicateKey(op, key string) error {
	return &KeyError{Op: op, Key: key, Err: ErrDuplicateKey}
}

func notFound(op, key string) error {
	return &KeyError{Op: op, Key: key, Err: ErrNotFound}
}

func invalidName(op, key string) error {
	return &KeyError{Op: op, Key: key, Err: ErrInvalidName}
}

func blank(name string) bool {
	return strings.TrimSpace(name) == ""
}

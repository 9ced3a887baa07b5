package printer

import (
	"errors"
	"slices"
	"strings"
)

// Mode selects when a [Printer] forwards buffered content to its sink.
type Mode string

const (
	// Buffered defers forwarding until a complete line (up to the last
	// newline) has accumulated.
	Buffered Mode = "buffered"
	// Unbuffered forwards the whole buffer on every write.
	Unbuffered Mode = "unbuffered"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownMode indicates an unrecognized delivery mode string.
	ErrUnknownMode = errors.New("unknown delivery mode")
)

// ParseMode parses a delivery mode string and returns the corresponding
// [Mode].
func ParseMode(mode string) (Mode, error) {
	m := Mode(strings.ToLower(mode))
	if slices.Contains([]Mode{Buffered, Unbuffered}, m) {
		return m, nil
	}

	return "", ErrUnknownMode
}

// GetAllModeStrings returns all valid delivery mode strings.
func GetAllModeStrings() []string {
	return []string{string(Buffered), string(Unbuffered)}
}

package linetree

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidInputKind is returned when a value cannot be classified as a
// Line, a Path or a sequence of sub-trees.
var ErrInvalidInputKind = errors.New("linetree: invalid input kind")

// InvalidInputError locates an ErrInvalidInputKind inside the input tree.
type InvalidInputError struct {
	Pos    []int
	Reason string
}

func (e *InvalidInputError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidInputKind.Error())
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	b.WriteString(" at ")
	b.WriteString(posString(e.Pos))
	return b.String()
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInputKind }

func posString(pos []int) string {
	if len(pos) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, i := range pos {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func invalid(pos []int, reason string) error {
	p := make([]int, len(pos))
	copy(p, pos)
	return &InvalidInputError{Pos: p, Reason: reason}
}

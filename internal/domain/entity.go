package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Placeholder is the kind of value a template injects.
type Placeholder int

const (
	PlaceholderID Placeholder = iota
	PlaceholderSubstitution
)

func (p Placeholder) String() string {
	switch p {
	case PlaceholderID:
		return "{id}"
	case PlaceholderSubstitution:
		return "{s}"
	default:
		return fmt.Sprintf("Placeholder(%d)", int(p))
	}
}

// SortOrder selects how directory entries are ordered before renaming.
type SortOrder string

const (
	SortLexical SortOrder = "lexical"
	SortNatural SortOrder = "natural"
)

// Case is a transform applied to a substituted list line.
type Case string

const (
	CaseNone  Case = ""
	CaseUpper Case = "upper"
	CaseLower Case = "lower"
	CaseTitle Case = "title"
)

// Options tune how a run lists entries and builds new names.
type Options struct {
	Sort  SortOrder
	Match string
	Pad   int
	Case  Case
}

// RenameOp is one planned rename inside the working directory.
type RenameOp struct {
	From string
	To   string
}

// Noop reports whether applying the operation would leave the name unchanged.
func (op RenameOp) Noop() bool {
	return op.From == op.To
}

// ParseSortOrder validates a user supplied sort order. Empty means lexical.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", SortLexical:
		return SortLexical, nil
	case SortNatural:
		return SortNatural, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidOption, s)
	}
}

// ParseCase validates a user supplied case transform. Empty means none.
func ParseCase(s string) (Case, error) {
	switch c := Case(s); c {
	case CaseNone, CaseUpper, CaseLower, CaseTitle:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown case %q", ErrInvalidOption, s)
	}
}

// CheckName rejects names that would leave the working directory or that no
// filesystem accepts.
func CheckName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, name)
	}
	return nil
}

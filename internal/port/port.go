package port

import (
	"os"

	"github.com/omegaatt36/renamer/internal/domain"
)

//go:generate mockgen -source=port.go -destination=../mock/mock_port.go -package=mock

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
	ReadFile(path string) ([]byte, error)
	// Rename moves oldpath to newpath and fails instead of replacing an
	// existing newpath.
	Rename(oldpath, newpath string) error
}

// PatternMatcher abstracts pattern matching for testability.
type PatternMatcher interface {
	ExpandShortcuts(pattern string) string
	Match(pattern, name string) (bool, error)
}

// Lister captures the ordered entry names of a directory.
type Lister interface {
	List(dir string, order domain.SortOrder) ([]string, error)
}

// PatternFilter narrows entry names by pattern.
type PatternFilter interface {
	MatchNames(names []string, pattern string) ([]string, error)
}

// Renamer plans and applies template driven renames.
type Renamer interface {
	PlanWithIndex(dir string, tmpl domain.Template, opts domain.Options) ([]domain.RenameOp, error)
	PlanWithList(dir string, tmpl domain.Template, listPath string, opts domain.Options) ([]domain.RenameOp, error)
	Apply(dir string, ops []domain.RenameOp) (int, error)
}

package service

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/omegaatt36/renamer/internal/domain"
	"github.com/omegaatt36/renamer/internal/port"
)

// Option configures the RenamerService.
type Option func(*RenamerService)

// WithLogger sets a custom logger for the RenamerService.
func WithLogger(logger *slog.Logger) Option {
	return func(s *RenamerService) {
		s.logger = logger
	}
}

// RenamerService plans renames from a template and applies them.
type RenamerService struct {
	fs     port.FileSystem
	lister port.Lister
	filter port.PatternFilter
	logger *slog.Logger
}

func NewRenamerService(fs port.FileSystem, lister port.Lister, filter port.PatternFilter, opts ...Option) *RenamerService {
	s := &RenamerService{
		fs:     fs,
		lister: lister,
		filter: filter,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlanWithIndex numbers the sorted entries of dir from 1.
func (s *RenamerService) PlanWithIndex(dir string, tmpl domain.Template, opts domain.Options) ([]domain.RenameOp, error) {
	if tmpl.Placeholder() != domain.PlaceholderID {
		return nil, fmt.Errorf("%w: %s has no {id} placeholder", domain.ErrInvalidFormat, tmpl)
	}

	names, err := s.snapshot(dir, opts)
	if err != nil {
		return nil, err
	}

	ops := make([]domain.RenameOp, len(names))
	for i, name := range names {
		ops[i] = domain.RenameOp{From: name, To: tmpl.ExpandIndex(i, opts.Pad)}
	}
	return ops, nil
}

// PlanWithList pairs line k of the list file with sorted entry k of dir.
// The list file is read in full before the directory is listed, and a line
// count that differs from the entry count yields no plan.
func (s *RenamerService) PlanWithList(dir string, tmpl domain.Template, listPath string, opts domain.Options) ([]domain.RenameOp, error) {
	if tmpl.Placeholder() != domain.PlaceholderSubstitution {
		return nil, fmt.Errorf("%w: %s has no {s} placeholder", domain.ErrInvalidFormat, tmpl)
	}

	data, err := s.fs.ReadFile(listPath)
	if err != nil {
		return nil, wrapAs(domain.ErrFileRead, err)
	}

	names, err := s.snapshot(dir, opts)
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(data))
	if len(lines) != len(names) {
		return nil, &domain.CountMismatchError{Lines: len(lines), Entries: len(names)}
	}

	ops := make([]domain.RenameOp, len(names))
	for i, name := range names {
		ops[i] = domain.RenameOp{From: name, To: tmpl.ExpandLine(lines[i], opts.Case)}
	}
	return ops, nil
}

// Apply performs ops in order inside dir and returns how many entries were
// renamed. It stops at the first failure; earlier renames are kept.
func (s *RenamerService) Apply(dir string, ops []domain.RenameOp) (int, error) {
	var renamed int
	for _, op := range ops {
		if op.Noop() {
			s.logger.Debug("name unchanged, skipped", "name", op.From)
			continue
		}

		if err := domain.CheckName(op.To); err != nil {
			return renamed, &domain.RenameError{From: op.From, To: op.To, Err: err}
		}
		if err := s.fs.Rename(filepath.Join(dir, op.From), filepath.Join(dir, op.To)); err != nil {
			return renamed, &domain.RenameError{From: op.From, To: op.To, Err: err}
		}

		renamed++
		s.logger.Debug("renamed", "from", op.From, "to", op.To)
	}
	return renamed, nil
}

func (s *RenamerService) snapshot(dir string, opts domain.Options) ([]string, error) {
	names, err := s.lister.List(dir, opts.Sort)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("directory listed", "dir", dir, "entry_count", len(names))

	if opts.Match == "" {
		return names, nil
	}
	matched, err := s.filter.MatchNames(names, opts.Match)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("entries filtered", "pattern", opts.Match, "matched_count", len(matched))
	return matched, nil
}

// splitLines splits newline-delimited text. A trailing newline does not start
// an extra record and a CR before the newline is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

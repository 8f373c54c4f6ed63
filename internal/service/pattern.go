package service

import (
	"github.com/omegaatt36/renamer/internal/port"
)

// PatternService narrows entry names by pattern.
type PatternService struct {
	pm port.PatternMatcher
}

func NewPatternService(pm port.PatternMatcher) *PatternService {
	return &PatternService{pm: pm}
}

// MatchNames keeps the names matching pattern, preserving their order.
// Empty pattern returns all names.
func (s *PatternService) MatchNames(names []string, pattern string) ([]string, error) {
	if pattern == "" {
		return names, nil
	}

	expanded := s.pm.ExpandShortcuts(pattern)

	matched := make([]string, 0, len(names))
	for _, name := range names {
		ok, err := s.pm.Match(expanded, name)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

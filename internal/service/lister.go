package service

import (
	"errors"
	"fmt"

	"github.com/omegaatt36/renamer/internal/domain"
	"github.com/omegaatt36/renamer/internal/port"
)

// ListerService captures directory snapshots.
type ListerService struct {
	fs port.FileSystem
}

func NewListerService(fs port.FileSystem) *ListerService {
	return &ListerService{fs: fs}
}

// List returns the names of every immediate entry of dir, files and
// directories alike, in the requested order.
func (s *ListerService) List(dir string, order domain.SortOrder) ([]string, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, wrapAs(domain.ErrDirectoryRead, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: entry without a name in %s", domain.ErrDirectoryRead, dir)
		}
		names = append(names, name)
	}

	domain.SortNames(names, order)
	return names, nil
}

// wrapAs tags err with sentinel unless it already carries it.
func wrapAs(sentinel, err error) error {
	if errors.Is(err, sentinel) {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

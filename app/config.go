package app

import (
	"fmt"

	"github.com/omegaatt36/renamer/internal/domain"
)

// Flags holds the raw command-line flag values.
type Flags struct {
	Dir     string
	DryRun  bool
	Verbose bool
	Pad     int
	Case    string
	Sort    string
	Match   string
}

// Config is a validated rename request.
type Config struct {
	Template domain.Template
	ListPath string
	Dir      string
	DryRun   bool
	Options  domain.Options
}

// BuildConfig validates positional arguments and flags without touching the
// filesystem. Arguments are checked in order: the template is present, the
// template is well formed, then the list file matches the placeholder.
func BuildConfig(args []string, flags Flags) (Config, error) {
	if len(args) == 0 {
		return Config{}, fmt.Errorf("%w: please specify the renaming format", domain.ErrMissingArgument)
	}

	tmpl, err := domain.ParseTemplate(args[0])
	if err != nil {
		return Config{}, err
	}

	var listPath string
	switch {
	case len(args) > 2:
		return Config{}, fmt.Errorf("%w: %q", domain.ErrUnexpectedArgument, args[2])
	case tmpl.Placeholder() == domain.PlaceholderSubstitution && len(args) < 2:
		return Config{}, fmt.Errorf("%w: please provide the path to a list when using the {s} input type", domain.ErrMissingArgument)
	case tmpl.Placeholder() == domain.PlaceholderID && len(args) == 2:
		return Config{}, fmt.Errorf("%w: a list file cannot be used with the {id} input type", domain.ErrUnexpectedArgument)
	case len(args) == 2:
		listPath = args[1]
		if listPath == "" {
			return Config{}, fmt.Errorf("%w: empty list file path", domain.ErrMissingArgument)
		}
	}

	order, err := domain.ParseSortOrder(flags.Sort)
	if err != nil {
		return Config{}, err
	}
	textCase, err := domain.ParseCase(flags.Case)
	if err != nil {
		return Config{}, err
	}
	if flags.Pad < 0 || flags.Pad > domain.MaxPad {
		return Config{}, fmt.Errorf("%w: pad width %d is outside 0..%d", domain.ErrInvalidOption, flags.Pad, domain.MaxPad)
	}

	dir := flags.Dir
	if dir == "" {
		dir = "."
	}

	return Config{
		Template: tmpl,
		ListPath: listPath,
		Dir:      dir,
		DryRun:   flags.DryRun,
		Options: domain.Options{
			Sort:  order,
			Match: flags.Match,
			Pad:   flags.Pad,
			Case:  textCase,
		},
	}, nil
}

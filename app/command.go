package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/omegaatt36/renamer/internal/port"
	"github.com/omegaatt36/renamer/internal/service"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// NewCommand builds the root command around the given adapters.
func NewCommand(fs port.FileSystem, pm port.PatternMatcher) *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "renamer <template> [list-file]",
		Short: "Rename every entry of a directory from a template.",
		Long: `Rename every entry of a directory from a template.

The template holds exactly one placeholder and no whitespace or braces
around it:

  {id}  the 1-based position of the entry in sorted order
  {s}   the line of list-file at that position

With {s}, list-file must have exactly one line per entry.
Entries are sorted by name before numbering or pairing.`,
		Example: `  renamer 'file_{id}.txt'
  renamer --pad 3 'IMG_{id}.jpg'
  renamer 'owner_{s}.dat' names.txt
  renamer -n -C ./photos --match '\.jpg$' 'trip_{id}.jpg'
  renamer -- '-{id}.txt'`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := BuildConfig(args, flags)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), flags.Verbose)
			lister := service.NewListerService(fs)
			filter := service.NewPatternService(pm)
			renamer := service.NewRenamerService(fs, lister, filter, service.WithLogger(logger))

			out := cmd.OutOrStdout()
			a := NewApp(renamer, WithLister(lister), WithLogger(logger), WithOutput(out, isTerminal(out)))
			return a.Run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Dir, "dir", "C", ".", "Directory whose entries are renamed")
	f.BoolVarP(&flags.DryRun, "dry-run", "n", false, "Print the planned renames without applying them")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every rename to stderr")
	f.IntVar(&flags.Pad, "pad", 0, "Zero-pad {id} to this width")
	f.StringVar(&flags.Case, "case", "", "Transform {s} values: upper, lower or title")
	f.StringVar(&flags.Sort, "sort", "lexical", "Entry order: lexical or natural")
	f.StringVar(&flags.Match, "match", "", "Only rename entries matching this regex ([number], [any], [word], [alpha] shortcuts)")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

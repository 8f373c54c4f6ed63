package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/omegaatt36/renamer/internal/domain"
)

var (
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	arrowStyle    = lipgloss.NewStyle().Faint(true)
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderPlan prints one "old -> new" line per operation. existing is the
// full directory listing used to flag taken targets.
func renderPlan(w io.Writer, ops []domain.RenameOp, existing []string, styled bool) error {
	conflicts := domain.Conflicts(ops, existing)
	for i, op := range ops {
		var line string
		if styled {
			from, to := op.Diff()
			line = renderSegments(from) + " " + arrowStyle.Render("->") + " " + renderSegments(to)
		} else {
			line = op.From + " -> " + op.To
		}

		if conflicts[i] {
			note := "(target exists)"
			if styled {
				note = conflictStyle.Render(note)
			}
			line += " " + note
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderSegments(segs []domain.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Kind {
		case domain.SegmentRemoved:
			b.WriteString(removedStyle.Render(s.Text))
		case domain.SegmentAdded:
			b.WriteString(addedStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// isTerminal reports whether w is a terminal that accepts color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

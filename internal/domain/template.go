package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateRe accepts exactly one {id} or {s} placeholder with no ASCII
// whitespace or braces around it. Unicode whitespace is rejected separately
// since \s only covers ASCII.
var templateRe = regexp.MustCompile(`^[^\s{}]*\{(id|s)\}[^\s{}]*$`)

// Template is a validated file name pattern holding a single placeholder.
type Template struct {
	raw         string
	placeholder Placeholder
}

// ParseTemplate validates raw and reports which placeholder it uses.
func ParseTemplate(raw string) (Template, error) {
	groups := templateRe.FindStringSubmatch(raw)
	if groups == nil || strings.ContainsFunc(raw, unicode.IsSpace) {
		return Template{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	p := PlaceholderID
	if groups[1] == "s" {
		p = PlaceholderSubstitution
	}
	return Template{raw: raw, placeholder: p}, nil
}

func (t Template) String() string {
	return t.raw
}

func (t Template) Placeholder() Placeholder {
	return t.placeholder
}

// Expand replaces the placeholder with value.
func (t Template) Expand(value string) string {
	return strings.Replace(t.raw, t.placeholder.String(), value, 1)
}

// MaxPad bounds the zero-padding width so padded names stay within common
// file name length limits.
const MaxPad = 255

// ExpandIndex renders a 0-based index as the 1-based number users see,
// zero-padded to width when width > 0.
func (t Template) ExpandIndex(index, width int) string {
	n := index + 1
	if width > 0 {
		return t.Expand(fmt.Sprintf("%0*d", width, n))
	}
	return t.Expand(strconv.Itoa(n))
}

// ExpandLine substitutes a list file line after applying the case transform.
func (t Template) ExpandLine(line string, c Case) string {
	return t.Expand(applyCase(line, c))
}

func applyCase(s string, c Case) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	case CaseTitle:
		return cases.Title(language.English).String(s)
	default:
		return s
	}
}

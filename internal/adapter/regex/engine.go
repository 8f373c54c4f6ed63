package regex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/omegaatt36/renamer/internal/domain"
)

// Engine implements port.PatternMatcher using Go's regexp package. The last
// compiled pattern is reused, since a run matches every entry against one
// pattern. An Engine is not safe for concurrent use.
type Engine struct {
	pattern string
	re      *regexp.Regexp
}

// shortcuts maps user-friendly tokens to regex groups, expanded in order.
var shortcuts = strings.NewReplacer(
	"[serial]", `(\d+)`,
	"[number]", `(\d+)`,
	"[any]", `(.*)`,
	"[word]", `(\w+)`,
	"[alpha]", `([a-zA-Z]+)`,
)

func (e *Engine) ExpandShortcuts(pattern string) string {
	return shortcuts.Replace(pattern)
}

func (e *Engine) Match(pattern, name string) (bool, error) {
	if e.re == nil || e.pattern != pattern {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("%w: %s", domain.ErrInvalidPattern, err)
		}
		e.pattern, e.re = pattern, re
	}
	return e.re.MatchString(name), nil
}

package logging

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether a log line passes through the pipeline.
type Filter interface {
	Match(text string) bool
}

// ContainsFilter passes lines containing a fixed substring.
type ContainsFilter struct {
	Pattern string
}

// NewContainsFilter creates a substring filter.
func NewContainsFilter(pattern string) *ContainsFilter {
	return &ContainsFilter{Pattern: pattern}
}

// Match reports whether the line contains the pattern.
func (f *ContainsFilter) Match(text string) bool {
	return strings.Contains(text, f.Pattern)
}

// RegexpFilter passes lines matching a regular expression.
//
// A filter built from an invalid pattern matches nothing rather than
// failing the pipeline.
type RegexpFilter struct {
	re *regexp.Regexp
}

// NewRegexpFilter compiles a regular expression filter. The returned
// filter is usable even when err is non-nil; it then matches nothing.
func NewRegexpFilter(pattern string) (*RegexpFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return &RegexpFilter{}, fmt.Errorf("compiling filter pattern %q: %w", pattern, err)
	}
	return &RegexpFilter{re: re}, nil
}

// Match reports whether the line matches the expression.
func (f *RegexpFilter) Match(text string) bool {
	if f.re == nil {
		return false
	}
	return f.re.MatchString(text)
}

package patcher

import (
	"regexp"
	"strings"
)

// insertAfter returns a transform that inserts text right after the first
// occurrence of anchor.
func insertAfter(anchor, text string) func(string) string {
	return func(buf string) string {
		return strings.Replace(buf, anchor, anchor+text, 1)
	}
}

// contains returns a guard that reports whether marker is present.
func contains(marker string) func(string) bool {
	return func(buf string) bool {
		return strings.Contains(buf, marker)
	}
}

// replaceFirst replaces the first match of re in src with the result of repl,
// which receives the full match followed by its submatches.
func replaceFirst(re *regexp.Regexp, src string, repl func(groups []string) string) string {
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src
	}

	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = src[loc[2*i]:loc[2*i+1]]
		}
	}

	return src[:loc[0]] + repl(groups) + src[loc[1]:]
}

package patcher

import (
	"regexp"
	"strings"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
)

const (
	vuePluginImport = "import vue from '@vitejs/plugin-vue';"

	quasarPluginEntry = "    quasar({\n" +
		"      sassVariables: fileURLToPath(new URL('./src/quasar-variables.scss', import.meta.url))\n" +
		"    })"

	// VariablesContent is the default Quasar brand palette, written as a
	// newline-terminated text file.
	VariablesContent = "$primary: #1976D2;\n" +
		"$secondary: #26A69A;\n" +
		"$accent: #9C27B0;\n" +
		"$dark: #1D1D1D;\n" +
		"$positive: #21BA45;\n" +
		"$negative: #C10015;\n" +
		"$info: #31CCEC;\n" +
		"$warning: #F2C037;\n"
)

var (
	bareVueCall = regexp.MustCompile(`vue\(\)`)
	pluginsKey  = regexp.MustCompile(`^plugins:\s*\[`)
)

// regexPrefix holds the characters after which a slash opens a regular
// expression literal rather than a division.
const regexPrefix = "(,=:[!&|?{};+-*%<>~^/"

// BuildConfigRules returns the rules that wire the Quasar vite plugin into the
// bundler configuration.
func BuildConfigRules() []domain.Rule {
	return []domain.Rule{
		{
			Name:    "quasar-plugin-import",
			Applied: contains("@quasar/vite-plugin"),
			Apply: insertAfter(vuePluginImport,
				"\nimport { quasar, transformAssetUrls } from '@quasar/vite-plugin';"+
					"\nimport { fileURLToPath } from 'node:url';"),
		},
		{
			// Unguarded: once rewritten, vue() no longer matches.
			Name: "vue-asset-urls",
			Apply: func(buf string) string {
				return replaceFirst(bareVueCall, buf, func(_ []string) string {
					return "vue({ template: { transformAssetUrls } })"
				})
			},
		},
		{
			Name:    "quasar-plugin",
			Applied: contains("quasar("),
			Apply:   appendQuasarPlugin,
		},
	}
}

// appendQuasarPlugin rewrites the first plugins array literal so that each
// existing entry sits on its own line, followed by the quasar plugin. The
// buffer is returned unchanged when no balanced array is found.
func appendQuasarPlugin(buf string) string {
	start, open, ok := findPluginsArray(buf)
	if !ok {
		return buf
	}

	end, ok := matchBracket(buf, open)
	if !ok {
		return buf
	}

	entries := splitTopLevel(buf[open+1 : end])

	var b strings.Builder
	b.WriteString(buf[start:open])
	b.WriteString("[\n")
	for _, e := range entries {
		b.WriteString("    ")
		b.WriteString(e)
		b.WriteString(",\n")
	}
	b.WriteString(quasarPluginEntry)
	b.WriteString("\n  ]")

	return buf[:start] + b.String() + buf[end+1:]
}

// findPluginsArray locates the first `plugins: [` key in code, ignoring
// strings and comments. It returns the offset of the key and of its bracket.
func findPluginsArray(buf string) (start, open int, ok bool) {
	s := newScanner(buf)
	for i := 0; i < len(buf); {
		next, code := s.step(i)
		if code && buf[i] == 'p' && (i == 0 || !isIdentByte(buf[i-1])) {
			if loc := pluginsKey.FindStringIndex(buf[i:]); loc != nil {
				return i, i + loc[1] - 1, true
			}
		}
		i = next
	}
	return 0, 0, false
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c == '.' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// scanner walks source text while tracking nesting depth, skipping string,
// comment and regular expression literals.
type scanner struct {
	src     string
	depth   int
	quote   byte
	regexOK bool
}

func newScanner(src string) *scanner {
	return &scanner{src: src, regexOK: true}
}

// step advances past the token at i and returns the next index. code reports
// whether src[i] is a structural character outside literals and comments.
func (s *scanner) step(i int) (next int, code bool) {
	c := s.src[i]

	if s.quote != 0 {
		switch c {
		case '\\':
			return i + 2, false
		case s.quote:
			s.quote = 0
		}
		return i + 1, false
	}

	switch c {
	case '\'', '"', '`':
		s.quote = c
		s.regexOK = false
		return i + 1, false
	case '/':
		if i+1 < len(s.src) {
			switch s.src[i+1] {
			case '/':
				if j := strings.IndexByte(s.src[i:], '\n'); j >= 0 {
					return i + j, false
				}
				return len(s.src), false
			case '*':
				if j := strings.Index(s.src[i+2:], "*/"); j >= 0 {
					return i + 2 + j + 2, false
				}
				return len(s.src), false
			}
		}
		if s.regexOK {
			if end, ok := s.skipRegex(i); ok {
				s.regexOK = false
				return end, false
			}
		}
	case '(', '[', '{':
		s.depth++
	case ')', ']', '}':
		s.depth--
	}

	switch c {
	case ' ', '\t', '\n', '\r':
	default:
		s.regexOK = strings.IndexByte(regexPrefix, c) >= 0
	}
	return i + 1, true
}

// skipRegex returns the index just past the regular expression literal opened
// at i. A literal must close on the same line.
func (s *scanner) skipRegex(i int) (int, bool) {
	inClass := false
	for j := i + 1; j < len(s.src); j++ {
		switch s.src[j] {
		case '\\':
			j++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return j + 1, true
			}
		case '\n':
			return 0, false
		}
	}
	return 0, false
}

// matchBracket returns the index of the bracket closing the one at open.
func matchBracket(src string, open int) (int, bool) {
	s := newScanner(src)
	for i := open; i < len(src); {
		next, code := s.step(i)
		if code && s.depth == 0 {
			return i, true
		}
		i = next
	}
	return 0, false
}

// splitTopLevel splits a list body on commas that are not nested, trimming
// each entry and dropping empty ones.
func splitTopLevel(body string) []string {
	var entries []string
	s := newScanner(body)
	start := 0
	for i := 0; i < len(body); {
		next, code := s.step(i)
		if code && s.depth == 0 && body[i] == ',' {
			entries = appendEntry(entries, body[start:i])
			start = i + 1
		}
		i = next
	}
	return appendEntry(entries, body[start:])
}

func appendEntry(entries []string, raw string) []string {
	if e := strings.TrimSpace(raw); e != "" {
		return append(entries, e)
	}
	return entries
}

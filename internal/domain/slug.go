package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// slugWhitespace matches runs of whitespace, including the Unicode space
	// separators and BOM that Go's \s class leaves out.
	slugWhitespace = regexp.MustCompile(
		`[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+`,
	)
	slugDisallowed   = regexp.MustCompile(`[^\w-]+`)
	slugHyphenRuns   = regexp.MustCompile(`--+`)
	slugTrailingDash = regexp.MustCompile(`-$`)
)

// Slugify derives a lowercase, URL-safe identifier from title.
//
// Diacritics are split off by NFKD decomposition and then dropped along with
// every other character outside [a-z0-9-]. Whitespace runs become single
// hyphens, hyphen runs collapse, and one trailing hyphen is removed. A leading
// hyphen is kept. Titles consisting only of symbols produce "".
func Slugify(title string) string {
	s := norm.NFKD.String(title)
	s = strings.ToLower(s)
	s = strings.TrimFunc(s, isSlugSpace)
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", "")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return slugTrailingDash.ReplaceAllString(s, "")
}

func isSlugSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

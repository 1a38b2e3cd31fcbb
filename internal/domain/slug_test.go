package domain

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"punctuation is dropped", "My First Post!", "my-first-post"},
		{"symbols only", "???", ""},
		{"empty title", "", ""},
		{"surrounding and inner whitespace", "  Hello   World  ", "hello-world"},
		{"diacritics are stripped", "Café au lait", "cafe-au-lait"},
		{"compatibility ligature", "ﬁle upload", "file-upload"},
		{"underscores are removed", "snake_case title", "snakecase-title"},
		{"hyphen runs collapse", "a - b", "a-b"},
		{"underscore between hyphens", "a_-_b", "a-b"},
		{"trailing hyphen removed", "ends with dash-", "ends-with-dash"},
		{"trailing symbol after space", "hello !", "hello"},
		{"leading hyphen kept", "-leading", "-leading"},
		{"tabs and newlines", "Tab\tand\nnewline", "tab-and-newline"},
		{"digits survive", "100% Go", "100-go"},
		{"no-break space", "x\u00a0y", "x-y"},
		{"ideographic space", "x\u3000y", "x-y"},
		{"non latin script", "日本語", ""},
		{"already a slug", "already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

var slugAlphabet = regexp.MustCompile(`^[a-z0-9-]*$`)

func TestSlugifyProperties(t *testing.T) {
	inputs := []string{
		"My First Post!",
		"  ---  ",
		"__init__",
		"Hello, World -- Again --",
		"ÀÉÎÕÜ çñ",
		"emoji 🎉 party 🎉",
		"MiXeD CaSe_With_Underscores",
		"\ufeffBOM title\ufeff",
		"a b c",
		"trailing hyphens ---",
		"Ⅻ roman numeral",
		"ＦＵＬＬ ｗｉｄｔｈ",
	}

	for _, in := range inputs {
		first := Slugify(in)
		second := Slugify(in)

		if first != second {
			t.Errorf("Slugify(%q) not deterministic: %q vs %q", in, first, second)
		}
		if !slugAlphabet.MatchString(first) {
			t.Errorf("Slugify(%q) = %q contains characters outside [a-z0-9-]", in, first)
		}
		if strings.Contains(first, "--") {
			t.Errorf("Slugify(%q) = %q contains consecutive hyphens", in, first)
		}
		if strings.HasSuffix(first, "-") {
			t.Errorf("Slugify(%q) = %q has a trailing hyphen", in, first)
		}
	}
}

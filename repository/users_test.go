package repository

import (
	"regexp"
	"testing"
)

func TestSearchRegexQuotesMetacharacters(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		matches string
		skips   string
	}{
		{"plain substring", "kwame", "kwame mensah", "akosua"},
		{"dot is literal", "a.b", "mail a.b here", "aXb"},
		{"star is literal", ".*", "weird .* name", "anything"},
		{"plus is literal", "c++", "c++ study group", "ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := searchRegex(tt.search)
			if re.Options != "i" {
				t.Errorf("options = %q, want i", re.Options)
			}

			compiled, err := regexp.Compile("(?i)" + re.Pattern)
			if err != nil {
				t.Fatalf("pattern %q does not compile: %v", re.Pattern, err)
			}
			if !compiled.MatchString(tt.matches) {
				t.Errorf("pattern %q should match %q", re.Pattern, tt.matches)
			}
			if compiled.MatchString(tt.skips) {
				t.Errorf("pattern %q should not match %q", re.Pattern, tt.skips)
			}
		})
	}
}

func TestSearchRegexCaseInsensitive(t *testing.T) {
	re := searchRegex("Mensah")

	compiled := regexp.MustCompile("(?i)" + re.Pattern)
	if !compiled.MatchString("kofi mensah") {
		t.Error("lowercased name should match an uppercased search")
	}
}

package helper

import (
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Indian Polity", "indian-polity"},
		{"  Modern   History!  ", "modern-history"},
		{"Science & Technology", "science-technology"},
		{"---", ""},
		{"Already-Slugged", "already-slugged"},
		{"UPSC 2024 Prelims", "upsc-2024-prelims"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCutToLen(t *testing.T) {
	if got := cutToLen("abcdef", 4); got != "abcd" {
		t.Fatalf("got %q", got)
	}
	if got := cutToLen("ab", 4); got != "ab" {
		t.Fatalf("got %q", got)
	}
}

package service

import (
	"testing"
)

func TestNormalizeOptionsStrings(t *testing.T) {
	opts := NormalizeOptions([]interface{}{"Paris", "London", "Berlin"})
	if len(opts) != 3 {
		t.Fatalf("got %d options", len(opts))
	}
	if opts[0].ID != 1 || opts[0].Text != "Paris" {
		t.Fatalf("first option = %+v", opts[0])
	}
	if opts[2].ID != 3 || opts[2].Text != "Berlin" {
		t.Fatalf("third option = %+v", opts[2])
	}
}

func TestNormalizeOptionsObjects(t *testing.T) {
	opts := NormalizeOptions([]interface{}{
		map[string]interface{}{"id": float64(4), "text": "Delhi"},
		map[string]interface{}{"label": "Mumbai"},
		map[string]interface{}{"value": float64(42)},
	})
	if opts[0].ID != 4 || opts[0].Text != "Delhi" {
		t.Fatalf("explicit id option = %+v", opts[0])
	}
	if opts[1].ID != 2 || opts[1].Text != "Mumbai" {
		t.Fatalf("label fallback = %+v", opts[1])
	}
	if opts[2].ID != 3 || opts[2].Text != "42" {
		t.Fatalf("value fallback = %+v", opts[2])
	}
}

func TestResolveCorrectOptionExplicitField(t *testing.T) {
	opts := NormalizeOptions([]interface{}{"Paris", "London"})
	raw := RawQuestion{CorrectOption: float64(2)}

	id, text, ok := ResolveCorrectOption(raw, opts)
	if !ok || id != 2 || text != "London" {
		t.Fatalf("got id=%d text=%q ok=%v", id, text, ok)
	}
}

func TestResolveCorrectOptionFromOptionNPattern(t *testing.T) {
	opts := NormalizeOptions([]interface{}{"Paris", "London", "Berlin"})
	raw := RawQuestion{Answer: "Option 3 is the right one"}

	id, text, ok := ResolveCorrectOption(raw, opts)
	if !ok || id != 3 || text != "Berlin" {
		t.Fatalf("got id=%d text=%q ok=%v", id, text, ok)
	}
}

func TestResolveCorrectOptionFromTextMatch(t *testing.T) {
	opts := NormalizeOptions([]interface{}{"Paris", "London"})
	raw := RawQuestion{CorrectAnswer: "london"}

	id, text, ok := ResolveCorrectOption(raw, opts)
	if !ok || id != 2 || text != "London" {
		t.Fatalf("got id=%d text=%q ok=%v", id, text, ok)
	}
}

func TestResolveCorrectOptionPrefersCorrectAnswerField(t *testing.T) {
	opts := NormalizeOptions([]interface{}{"Paris", "London"})
	raw := RawQuestion{CorrectAnswer: "Paris", Answer: "London"}

	id, _, ok := ResolveCorrectOption(raw, opts)
	if !ok || id != 1 {
		t.Fatalf("correctAnswer must win over answer, got id=%d ok=%v", id, ok)
	}
}

func TestResolveCorrectOptionVerbatimFallback(t *testing.T) {
	opts := NormalizeOptions([]interface{}{"Paris", "London"})

	// An answer matching no option still resolves: text kept verbatim, id unset.
	id, text, ok := ResolveCorrectOption(RawQuestion{Answer: "Madrid"}, opts)
	if !ok || id != 0 || text != "Madrid" {
		t.Fatalf("got id=%d text=%q ok=%v, want 0/Madrid/true", id, text, ok)
	}

	// explicit id pointing at a missing option falls through to text matching
	raw := RawQuestion{CorrectOption: float64(9), Answer: "Paris"}
	id, _, ok = ResolveCorrectOption(raw, opts)
	if !ok || id != 1 {
		t.Fatalf("dangling correctOption must fall back to text, got id=%d ok=%v", id, ok)
	}
}

func TestResolveCorrectOptionNoAnswer(t *testing.T) {
	opts := NormalizeOptions([]interface{}{"Paris", "London"})
	if _, _, ok := ResolveCorrectOption(RawQuestion{}, opts); ok {
		t.Fatal("a record with no answer at all must not resolve")
	}
}

func TestToInt(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int
		ok   bool
	}{
		{3, 3, true},
		{int64(7), 7, true},
		{float64(2), 2, true},
		{" 12 ", 12, true},
		{"abc", 0, false},
		{"", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := toInt(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("toInt(%v) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

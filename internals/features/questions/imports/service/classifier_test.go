package service

import (
	"testing"
)

func TestClassifyTopicFirstMatchWins(t *testing.T) {
	// Mentions both the judiciary and the constituent assembly; the
	// constituent assembly rule sits higher, so it wins.
	slug, ok := ClassifyTopic(
		"Article 124 was debated in the Constituent Assembly before the Supreme Court was set up.",
		"",
	)
	if !ok || slug != "making-of-the-constitution" {
		t.Fatalf("got %q ok=%v, want making-of-the-constitution", slug, ok)
	}
}

func TestClassifyTopicSpecificBeforeCatchAll(t *testing.T) {
	slug, ok := ClassifyTopic("Which article deals with the Supreme Court?", "Article 124.")
	if !ok || slug != "judiciary" {
		t.Fatalf("got %q ok=%v, want judiciary (not the article catch-all)", slug, ok)
	}
}

func TestClassifyTopicCatchAll(t *testing.T) {
	slug, ok := ClassifyTopic("Article 370 relates to which state?", "")
	if !ok || slug != "constitution-general" {
		t.Fatalf("got %q ok=%v, want constitution-general", slug, ok)
	}
}

func TestClassifyTopicUsesExplanation(t *testing.T) {
	slug, ok := ClassifyTopic("Which crop pattern suits this region?", "The monsoon rainfall decides it.")
	if !ok || slug != "climate" {
		t.Fatalf("got %q ok=%v, want climate", slug, ok)
	}
}

func TestClassifyTopicCaseInsensitive(t *testing.T) {
	slug, ok := ClassifyTopic("WHO LED THE SALT MARCH?", "")
	if !ok || slug != "freedom-struggle" {
		t.Fatalf("got %q ok=%v, want freedom-struggle", slug, ok)
	}
}

func TestClassifyTopicNoMatch(t *testing.T) {
	slug, ok := ClassifyTopic("What is the capital of France?", "")
	if ok || slug != "" {
		t.Fatalf("got %q ok=%v, want no match", slug, ok)
	}
}

func TestClassifyTopicHistoryAndScience(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"The ruins of Mohenjo-daro were excavated in 1922.", "indus-valley-civilisation"},
		{"Ashoka embraced Buddhism after the Kalinga war.", "mauryan-empire"},
		{"Akbar abolished the jizya tax.", "mughal-empire"},
		{"The Revolt of 1857 began at Meerut.", "company-rule"},
		{"Photosynthesis takes place in the chloroplast.", "biology-basics"},
		{"State Newton's second law.", "physics-basics"},
		{"The repo rate is set by the RBI.", "monetary-policy"},
	}
	for _, tc := range cases {
		slug, ok := ClassifyTopic(tc.text, "")
		if !ok || slug != tc.want {
			t.Errorf("ClassifyTopic(%q) = %q ok=%v, want %q", tc.text, slug, ok, tc.want)
		}
	}
}

package helper

import (
	"strings"
	"testing"
)

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if p.Limit() != 25 {
		t.Fatalf("limit = %d", p.Limit())
	}
	if p.Offset() != 50 {
		t.Fatalf("offset = %d, want 50", p.Offset())
	}
}

func TestSafeOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{
		"created_at": "question_created_at",
		"difficulty": "question_difficulty",
	}

	p := Params{SortBy: "difficulty", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatal(err)
	}
	if clause != "ORDER BY question_difficulty ASC" {
		t.Fatalf("clause = %q", clause)
	}

	// unknown key falls back to the default, never passes raw input through
	p = Params{SortBy: "question_id; DROP TABLE questions"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(clause, "question_created_at") || strings.Contains(clause, "DROP") {
		t.Fatalf("clause = %q", clause)
	}
}

func TestSafeOrderClauseBadDefault(t *testing.T) {
	p := Params{}
	if _, err := p.SafeOrderClause(map[string]string{}, "missing"); err == nil {
		t.Fatal("expected error for missing default key")
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	if meta.TotalPages != 5 {
		t.Fatalf("total pages = %d, want 5", meta.TotalPages)
	}
	if !meta.HasPrev || !meta.HasNext {
		t.Fatalf("meta nav flags = %+v", meta)
	}
	if meta.PrevPage == nil || *meta.PrevPage != 1 || meta.NextPage == nil || *meta.NextPage != 3 {
		t.Fatalf("meta nav pages = %+v", meta)
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty meta = %+v", empty)
	}
}

package service

import (
	"testing"
	"time"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 10, 30, 0, 0, time.UTC)
}

func TestNextStreakFirstActivity(t *testing.T) {
	cur, longest := NextStreak(0, 0, nil, day(2026, 3, 1))
	if cur != 1 || longest != 1 {
		t.Fatalf("first activity = %d/%d, want 1/1", cur, longest)
	}
}

func TestNextStreakSameDayNoOp(t *testing.T) {
	last := day(2026, 3, 1)
	cur, longest := NextStreak(3, 5, &last, day(2026, 3, 1).Add(8*time.Hour))
	if cur != 3 || longest != 5 {
		t.Fatalf("same day = %d/%d, want 3/5", cur, longest)
	}
}

func TestNextStreakNextDayExtends(t *testing.T) {
	last := day(2026, 3, 1)
	cur, longest := NextStreak(3, 3, &last, day(2026, 3, 2))
	if cur != 4 || longest != 4 {
		t.Fatalf("next day = %d/%d, want 4/4", cur, longest)
	}
}

func TestNextStreakGapResets(t *testing.T) {
	last := day(2026, 3, 1)
	cur, longest := NextStreak(7, 9, &last, day(2026, 3, 4))
	if cur != 1 || longest != 9 {
		t.Fatalf("gap = %d/%d, want 1/9 (longest retained)", cur, longest)
	}
}

func TestNextStreakMidnightBoundary(t *testing.T) {
	// 23:59 then 00:01 the next day counts as consecutive days
	last := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	now := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	cur, _ := NextStreak(1, 1, &last, now)
	if cur != 2 {
		t.Fatalf("midnight boundary = %d, want 2", cur)
	}
}

func TestNextStreakSequence(t *testing.T) {
	// day 1, day 2, then a skip: 1 -> 2 -> 1
	cur, longest := NextStreak(0, 0, nil, day(2026, 3, 1))
	last := day(2026, 3, 1)

	cur, longest = NextStreak(cur, longest, &last, day(2026, 3, 2))
	if cur != 2 || longest != 2 {
		t.Fatalf("after second day = %d/%d, want 2/2", cur, longest)
	}
	last = day(2026, 3, 2)

	cur, longest = NextStreak(cur, longest, &last, day(2026, 3, 5))
	if cur != 1 || longest != 2 {
		t.Fatalf("after skip = %d/%d, want 1/2", cur, longest)
	}
}

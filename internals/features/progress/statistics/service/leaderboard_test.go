package service

import (
	"testing"
	"time"
)

func TestPeriodCutoffToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	cutoff, ok := periodCutoff("today", now)
	if !ok {
		t.Fatal("today must resolve")
	}
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !cutoff.Equal(want) {
		t.Fatalf("today cutoff = %v, want %v", cutoff, want)
	}
}

func TestPeriodCutoffMonthIsCalendarMonth(t *testing.T) {
	// Sep 1 noon: the month window starts at Sep 1 midnight, so a user last
	// active in late August is off the board.
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	cutoff, ok := periodCutoff("month", now)
	if !ok {
		t.Fatal("month must resolve")
	}
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !cutoff.Equal(want) {
		t.Fatalf("month cutoff = %v, want %v", cutoff, want)
	}

	august := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	if !august.Before(cutoff) {
		t.Fatal("last-month activity must fall outside the month window")
	}
}

func TestPeriodCutoffWeekRolls(t *testing.T) {
	now := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	cutoff, ok := periodCutoff("week", now)
	if !ok {
		t.Fatal("week must resolve")
	}
	if !cutoff.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("week cutoff = %v", cutoff)
	}
}

func TestPeriodCutoffUnknown(t *testing.T) {
	if _, ok := periodCutoff("all", time.Now()); ok {
		t.Fatal("all must mean no cutoff")
	}
	if _, ok := periodCutoff("", time.Now()); ok {
		t.Fatal("empty period must mean no cutoff")
	}
}

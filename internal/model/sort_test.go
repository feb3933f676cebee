package model

import (
	"testing"
	"time"
)

func TestSortRecords_ByOperation(t *testing.T) {
	now := time.Now()
	records := []*CheckRecord{
		{ID: "r1", Operation: OpXMLText, CheckTime: now},
		{ID: "r2", Operation: OpAdd, CheckTime: now},
		{ID: "r3", Operation: OpPalindrome, CheckTime: now},
	}

	SortRecords(records, "operation")

	if records[0].Operation != OpAdd {
		t.Errorf("Expected add first, got %s", records[0].Operation)
	}
	if records[1].Operation != OpPalindrome {
		t.Errorf("Expected palindrome second, got %s", records[1].Operation)
	}
	if records[2].Operation != OpXMLText {
		t.Errorf("Expected xmltext third, got %s", records[2].Operation)
	}
}

func TestSortRecords_ByCheckTime(t *testing.T) {
	now := time.Now()
	older := now.Add(-1 * time.Hour)
	oldest := now.Add(-2 * time.Hour)

	records := []*CheckRecord{
		{ID: "r1", CheckTime: oldest},
		{ID: "r2", CheckTime: now},
		{ID: "r3", CheckTime: older},
	}

	SortRecords(records, "check-time")

	// Should be sorted newest first (After comparison)
	if !records[0].CheckTime.Equal(now) {
		t.Errorf("Expected newest first, got %v", records[0].CheckTime)
	}
	if !records[1].CheckTime.Equal(older) {
		t.Errorf("Expected older second, got %v", records[1].CheckTime)
	}
	if !records[2].CheckTime.Equal(oldest) {
		t.Errorf("Expected oldest third, got %v", records[2].CheckTime)
	}
}

func TestSortRecords_ByID(t *testing.T) {
	now := time.Now()
	records := []*CheckRecord{
		{ID: "c", CheckTime: now},
		{ID: "a", CheckTime: now},
		{ID: "b", CheckTime: now},
	}

	SortRecords(records, "id")

	for i, expected := range []string{"a", "b", "c"} {
		if records[i].ID != expected {
			t.Errorf("Expected %s at position %d, got %s", expected, i, records[i].ID)
		}
	}
}

func TestSortRecords_Default(t *testing.T) {
	now := time.Now()
	older := now.Add(-time.Minute)
	records := []*CheckRecord{
		{ID: "b", CheckTime: now},
		{ID: "c", CheckTime: older},
		{ID: "a", CheckTime: now},
	}

	SortRecords(records, "")

	// Default sort: newest first, then by ID
	if records[0].ID != "a" {
		t.Errorf("Expected a first, got %s", records[0].ID)
	}
	if records[1].ID != "b" {
		t.Errorf("Expected b second, got %s", records[1].ID)
	}
	if records[2].ID != "c" {
		t.Errorf("Expected c third, got %s", records[2].ID)
	}
}

func TestSortRecords_UnrecognizedFallsBackToDefault(t *testing.T) {
	now := time.Now()
	records := []*CheckRecord{
		{ID: "old", CheckTime: now.Add(-time.Hour)},
		{ID: "new", CheckTime: now},
	}

	SortRecords(records, "invalid-sort-field")

	if records[0].ID != "new" {
		t.Errorf("Expected default sort behavior, got %s first", records[0].ID)
	}
}

func TestSortRecords_EmptySlice(t *testing.T) {
	records := []*CheckRecord{}

	// Should not panic
	SortRecords(records, "operation")

	if len(records) != 0 {
		t.Errorf("Expected empty slice to remain empty")
	}
}

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		input    string
		expected SortBy
		ok       bool
	}{
		{"", SortByDefault, true},
		{"operation", SortByOperation, true},
		{"check-time", SortByCheckTime, true},
		{"id", SortByID, true},
		{"time", "", false},
		{"ID", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSortBy(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseSortBy(%q) = %q, %v, expected %q, %v", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

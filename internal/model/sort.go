package model

import "sort"

// SortBy specifies the field and order for sorting check records
type SortBy string

const (
	SortByOperation SortBy = "operation"
	SortByCheckTime SortBy = "check-time"
	SortByID        SortBy = "id"
	SortByDefault   SortBy = "" // Default sort: newest first, then ID
)

// SortByValues lists the accepted non-default sort keys
var SortByValues = []SortBy{SortByOperation, SortByCheckTime, SortByID}

// ParseSortBy returns the SortBy with the given name. The empty string is the default order.
func ParseSortBy(name string) (SortBy, bool) {
	if name == string(SortByDefault) {
		return SortByDefault, true
	}
	for _, v := range SortByValues {
		if string(v) == name {
			return v, true
		}
	}
	return "", false
}

// SortRecords sorts a slice of check records in place based on the specified field.
// The sortBy parameter should be one of: "operation", "check-time", "id".
// If sortBy is empty or unrecognized, records are sorted newest first, then by ID.
func SortRecords(records []*CheckRecord, sortBy string) {
	switch SortBy(sortBy) {
	case SortByOperation:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Operation < records[j].Operation
		})
	case SortByCheckTime:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CheckTime.After(records[j].CheckTime)
		})
	case SortByID:
		sort.Slice(records, func(i, j int) bool {
			return records[i].ID < records[j].ID
		})
	default:
		sort.Slice(records, func(i, j int) bool {
			if !records[i].CheckTime.Equal(records[j].CheckTime) {
				return records[i].CheckTime.After(records[j].CheckTime)
			}
			return records[i].ID < records[j].ID
		})
	}
}

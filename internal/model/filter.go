package model

// RecordFilter contains criteria for filtering check records.
// All criteria are optional; only non-empty slices are applied.
// Within each field, values are combined with OR logic (any value matches).
// Between fields, criteria are combined with AND logic (all fields must match).
type RecordFilter struct {
	// Operations filters by operation name (OR within list)
	Operations []Operation

	// IDs filters by exact record ID (OR within list)
	IDs []string

	// OnlyFailures keeps only records whose check returned an error
	OnlyFailures bool
}

// IsEmpty reports whether the filter matches every record
func (f RecordFilter) IsEmpty() bool {
	return len(f.Operations) == 0 && len(f.IDs) == 0 && !f.OnlyFailures
}

// FilterRecords filters a slice of check records based on the provided criteria.
// Returns a new slice containing only records that match the filter.
// An empty filter returns the input unchanged.
func FilterRecords(records []*CheckRecord, filter RecordFilter) []*CheckRecord {
	if filter.IsEmpty() {
		return records
	}

	opMap := make(map[Operation]bool)
	for _, op := range filter.Operations {
		opMap[op] = true
	}

	idMap := make(map[string]bool)
	for _, id := range filter.IDs {
		idMap[id] = true
	}

	var filtered []*CheckRecord

	for _, record := range records {
		if len(filter.Operations) > 0 && !opMap[record.Operation] {
			continue
		}

		if len(filter.IDs) > 0 && !idMap[record.ID] {
			continue
		}

		if filter.OnlyFailures && !record.Failed() {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}

package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("check record not found")
	ErrAlreadyExists = errors.New("check record already exists")
)

// Operation names a check that can be run and recorded
type Operation string

const (
	OpPalindrome Operation = "palindrome"
	OpAdd        Operation = "add"
	OpDivide     Operation = "divide"
	OpXMLText    Operation = "xmltext"
)

// Operations lists every known operation in display order
var Operations = []Operation{OpPalindrome, OpAdd, OpDivide, OpXMLText}

// ParseOperation returns the Operation with the given name
func ParseOperation(name string) (Operation, bool) {
	for _, op := range Operations {
		if string(op) == name {
			return op, true
		}
	}
	return "", false
}

// CheckRecord is the stored outcome of one check invocation
type CheckRecord struct {
	ID        string
	Operation Operation
	Input     []string
	Result    string
	Error     string `json:",omitempty"`
	CheckTime time.Time
	Rev       int64
}

// Failed reports whether the check returned an error
func (r *CheckRecord) Failed() bool {
	return r.Error != ""
}

// CheckRepository defines the interface for storing and retrieving check records
type CheckRepository interface {
	// Store saves a record; it fails with ErrAlreadyExists if the ID is taken
	Store(ctx context.Context, record *CheckRecord) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*CheckRecord, error)

	// List retrieves all records
	List(ctx context.Context) ([]*CheckRecord, error)

	// Delete removes a record by ID
	Delete(ctx context.Context, id string) error
}

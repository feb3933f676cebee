// Package check runs text and arithmetic checks from raw string input,
// logs each outcome, and optionally records it in a CheckRepository.
package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mrled/suns/textval/internal/model"
	"github.com/mrled/suns/textval/internal/textcheck"
	"github.com/mrled/suns/textval/internal/xmltext"
)

// ErrNoHistory is returned by record lookups when no repository is configured
var ErrNoHistory = errors.New("no history store configured")

// Service runs checks. A nil repository disables recording.
type Service struct {
	repo  model.CheckRepository
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

// NewService creates a check service
func NewService(repo model.CheckRepository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Palindrome reports whether text is a palindrome. Result is "true" or "false".
func (s *Service) Palindrome(ctx context.Context, text string) (*model.CheckRecord, error) {
	return s.run(ctx, model.OpPalindrome, []string{text}, func() (string, error) {
		return strconv.FormatBool(textcheck.IsPalindrome(text)), nil
	})
}

// Add sums two numbers given as decimal strings
func (s *Service) Add(ctx context.Context, a, b string) (*model.CheckRecord, error) {
	return s.run(ctx, model.OpAdd, []string{a, b}, func() (string, error) {
		ops, err := parseOperands(a, b)
		if err != nil {
			return "", err
		}
		return ops.add(), nil
	})
}

// Divide divides a by b, failing with textcheck.ErrInvalidArgument on a zero divisor
func (s *Service) Divide(ctx context.Context, a, b string) (*model.CheckRecord, error) {
	return s.run(ctx, model.OpDivide, []string{a, b}, func() (string, error) {
		ops, err := parseOperands(a, b)
		if err != nil {
			return "", err
		}
		return ops.divide()
	})
}

// XMLText extracts the text of the named child element of doc's root
func (s *Service) XMLText(ctx context.Context, doc, element string) (*model.CheckRecord, error) {
	return s.run(ctx, model.OpXMLText, []string{doc, element}, func() (string, error) {
		text, err := xmltext.ChildText(doc, element)
		if err != nil {
			return "", fmt.Errorf("%w: %w", textcheck.ErrInvalidArgument, err)
		}
		return text, nil
	})
}

// Run dispatches op with positional arguments in the order the named methods take them
func (s *Service) Run(ctx context.Context, op model.Operation, args []string) (*model.CheckRecord, error) {
	want := 2
	if op == model.OpPalindrome {
		want = 1
	}
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", textcheck.ErrInvalidArgument, op, want, len(args))
	}

	switch op {
	case model.OpPalindrome:
		return s.Palindrome(ctx, args[0])
	case model.OpAdd:
		return s.Add(ctx, args[0], args[1])
	case model.OpDivide:
		return s.Divide(ctx, args[0], args[1])
	case model.OpXMLText:
		return s.XMLText(ctx, args[0], args[1])
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", textcheck.ErrInvalidArgument, op)
	}
}

// run executes fn, builds the record, logs it and stores it.
// The record is returned even when the check fails.
func (s *Service) run(ctx context.Context, op model.Operation, input []string, fn func() (string, error)) (*model.CheckRecord, error) {
	result, checkErr := fn()

	record := &model.CheckRecord{
		ID:        s.newID(),
		Operation: op,
		Input:     input,
		Result:    result,
		CheckTime: s.now().UTC(),
	}
	if checkErr != nil {
		record.Error = checkErr.Error()
		s.log.Warn("Check failed",
			slog.String("id", record.ID),
			slog.String("operation", string(op)),
			slog.String("error", record.Error))
	} else {
		s.log.Debug("Check completed",
			slog.String("id", record.ID),
			slog.String("operation", string(op)),
			slog.String("result", result))
	}

	if s.repo != nil {
		if err := s.repo.Store(ctx, record); err != nil {
			if checkErr != nil {
				return record, fmt.Errorf("%s: %w (also failed to record: %w)", op, checkErr, err)
			}
			return record, fmt.Errorf("failed to record %s check: %w", op, err)
		}
	}

	if checkErr != nil {
		return record, fmt.Errorf("%s: %w", op, checkErr)
	}
	return record, nil
}

// History lists recorded checks matching filter, sorted by sortBy
func (s *Service) History(ctx context.Context, filter model.RecordFilter, sortBy string) ([]*model.CheckRecord, error) {
	if s.repo == nil {
		return nil, nil
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	filtered := model.FilterRecords(records, filter)
	model.SortRecords(filtered, sortBy)
	return filtered, nil
}

// Record returns the recorded check with the given ID
func (s *Service) Record(ctx context.Context, id string) (*model.CheckRecord, error) {
	if s.repo == nil {
		return nil, ErrNoHistory
	}

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", id, err)
	}
	return record, nil
}

// DeleteRecord removes the recorded check with the given ID
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrNoHistory
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", id, err)
	}
	s.log.Info("Deleted check record", slog.String("id", id))
	return nil
}

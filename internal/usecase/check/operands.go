package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrled/suns/textval/internal/textcheck"
)

// operands holds two parsed numbers. When both inputs are integers the
// integer fields are used, otherwise the float fields.
type operands struct {
	isInt bool
	ia    int64
	ib    int64
	fa    float64
	fb    float64
}

// parseOperands parses two decimal numbers, preferring int64 when both fit
func parseOperands(a, b string) (operands, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)

	ia, errA := strconv.ParseInt(a, 10, 64)
	ib, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return operands{isInt: true, ia: ia, ib: ib}, nil
	}

	fa, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return operands{}, fmt.Errorf("%w: %q is not a number", textcheck.ErrInvalidArgument, a)
	}
	fb, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return operands{}, fmt.Errorf("%w: %q is not a number", textcheck.ErrInvalidArgument, b)
	}
	return operands{fa: fa, fb: fb}, nil
}

func (o operands) add() string {
	if o.isInt {
		return strconv.FormatInt(textcheck.Add(o.ia, o.ib), 10)
	}
	return formatFloat(textcheck.Add(o.fa, o.fb))
}

func (o operands) divide() (string, error) {
	var (
		q   float64
		err error
	)
	if o.isInt {
		q, err = textcheck.Divide(o.ia, o.ib)
	} else {
		q, err = textcheck.Divide(o.fa, o.fb)
	}
	if err != nil {
		return "", err
	}
	return formatFloat(q), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

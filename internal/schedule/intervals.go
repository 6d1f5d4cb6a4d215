package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Intervals holds the delay in days for each review stage. Index 0 is the
// day the problem was learned, index 1 the delay before the first review and
// the last index the final interval before mastery.
type Intervals []int

var DefaultIntervals = Intervals{0, 1, 3, 7, 21, 30}

var ErrInvalidIntervals = errors.New("invalid interval table")

// ParseIntervals reads a comma separated list such as "0,1,3,7,21,30".
func ParseIntervals(s string) (Intervals, error) {
	parts := strings.Split(s, ",")
	iv := make(Intervals, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidIntervals, part)
		}
		iv = append(iv, n)
	}
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	return iv, nil
}

func (iv Intervals) Validate() error {
	if len(iv) < 2 {
		return fmt.Errorf("%w: need at least 2 entries, got %d", ErrInvalidIntervals, len(iv))
	}
	for i, d := range iv {
		if d < 0 {
			return fmt.Errorf("%w: entry %d is negative (%d)", ErrInvalidIntervals, i, d)
		}
	}
	return nil
}

// MaxStage is the highest stage a record can hold before it is mastered.
func (iv Intervals) MaxStage() int {
	return len(iv) - 1
}

// FirstReview is the delay applied on creation and reset.
func (iv Intervals) FirstReview() int {
	return iv[1]
}

func (iv Intervals) String() string {
	parts := make([]string, len(iv))
	for i, d := range iv {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

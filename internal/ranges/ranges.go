// Package ranges parses "LOW-HIGH" strings into validated inclusive line intervals
package ranges

import (
	"fmt"
	"strconv"
	"strings"
)

// больше 10 цифр в границе не принимаем - для номеров строк этого хватает с запасом
const maxBoundDigits = 10

// Range - включительный интервал 1-based номеров строк, после Parse всегда Low <= High
type Range struct {
	Low  int
	High int
}

// Contains reports whether line number n falls inside the interval, both ends inclusive.
func (r Range) Contains(n int) bool {
	return n >= r.Low && n <= r.High
}

// Parse converts "N" or "LOW-HIGH" into a normalized Range: a single number
// means the one-line interval [N, N], reversed bounds are reordered.
func Parse(s string) (Range, error) {
	lowPart, highPart, hyphen := strings.Cut(s, "-")
	if !hyphen {
		// без дефиса вся строка - единственная граница
		n, err := parseBound(lowPart)
		if err != nil {
			return Range{}, err
		}
		return Range{Low: n, High: n}, nil
	}

	low, err := parseBound(lowPart)
	if err != nil {
		return Range{}, err
	}
	high, err := parseBound(highPart)
	if err != nil {
		return Range{}, err
	}

	// выравниваем границы, если заданы в обратном порядке
	if high < low {
		low, high = high, low
	}
	return Range{Low: low, High: high}, nil
}

func parseBound(seg string) (int, error) {
	switch {
	case seg == "":
		return 0, fmt.Errorf("empty range bound")
	case len(seg) > maxBoundDigits:
		return 0, fmt.Errorf("range bound %q is too long", seg)
	}

	n, err := strconv.Atoi(seg)
	switch {
	case err != nil:
		return 0, fmt.Errorf("range bound %q is not a number", seg)
	case n < 0:
		return 0, fmt.Errorf("range bound %q is negative", seg)
	}
	return n, nil
}

package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RollResult is the outcome of one Roll call.
type RollResult struct {
	Total int
	Rolls []int
	Bonus int
	Count int
	Sides int
}

// Notation is a parsed "NdS+B" expression.
type Notation struct {
	Count int
	Sides int
	Bonus int
}

// String renders the notation back to its short form.
func (n Notation) String() string {
	if n.Bonus == 0 {
		return fmt.Sprintf("%dd%d", n.Count, n.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", n.Count, n.Sides, n.Bonus)
}

// Parse reads dice notation such as "1d11+14" or "2d6-1".
func Parse(s string) (Notation, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Notation{}, errors.New("empty dice notation")
	}

	var bonus int
	expr := s
	if i := strings.IndexAny(s, "+-"); i > 0 {
		b, err := strconv.Atoi(s[i:])
		if err != nil {
			return Notation{}, fmt.Errorf("invalid dice bonus in %q", s)
		}
		bonus = b
		expr = s[:i]
	}

	parts := strings.Split(expr, "d")
	if len(parts) != 2 {
		return Notation{}, fmt.Errorf("invalid dice notation %q", s)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil || count < 1 {
		return Notation{}, fmt.Errorf("invalid dice count in %q", s)
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil || sides < 1 {
		return Notation{}, fmt.Errorf("invalid dice size in %q", s)
	}

	return Notation{Count: count, Sides: sides, Bonus: bonus}, nil
}

// RollNotation rolls n with r.
func RollNotation(r Roller, n Notation) (*RollResult, error) {
	return r.Roll(n.Count, n.Sides, n.Bonus)
}

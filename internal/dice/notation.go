package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidNotation is returned for text that is not [N]d<S>[+|-M].
var ErrInvalidNotation = errors.New("invalid dice notation, use a form like d20, 2d6, 3d8+2")

var notationRe = regexp.MustCompile(`^(\d+)?[dD](\d+)([+-]\d+)?$`)

// Spec is a parsed notation: roll Count dice with Sides faces and add Modifier.
type Spec struct {
	Count    int
	Sides    int
	Modifier int
}

// String renders the spec back in notation form.
func (s Spec) String() string {
	out := fmt.Sprintf("%dd%d", s.Count, s.Sides)
	if s.Modifier != 0 {
		out += fmt.Sprintf("%+d", s.Modifier)
	}
	return out
}

// ParseNotation parses a single dice group. Count defaults to 1 and the
// modifier to 0. Whitespace, extra groups and other operators are rejected.
func ParseNotation(text string) (Spec, error) {
	m := notationRe.FindStringSubmatch(text)
	if m == nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}
	spec := Spec{Count: 1}
	var err error
	if m[1] != "" {
		if spec.Count, err = strconv.Atoi(m[1]); err != nil {
			return Spec{}, fmt.Errorf("%w: %q: count: %v", ErrInvalidNotation, text, err)
		}
	}
	if spec.Sides, err = strconv.Atoi(m[2]); err != nil {
		return Spec{}, fmt.Errorf("%w: %q: sides: %v", ErrInvalidNotation, text, err)
	}
	if m[3] != "" {
		if spec.Modifier, err = strconv.Atoi(m[3]); err != nil {
			return Spec{}, fmt.Errorf("%w: %q: modifier: %v", ErrInvalidNotation, text, err)
		}
	}
	return spec, nil
}

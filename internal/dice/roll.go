// Package dice parses dice notation and rolls it.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// MaxCount caps the number of dice in one roll.
const MaxCount = 1000

// ErrInvalidSpec indicates a spec that cannot be rolled.
var ErrInvalidSpec = errors.New("dice must have at least one side")

// FixedDice are the one-click dice of the roller panel.
var FixedDice = []int{4, 6, 8, 10, 12, 20, 100}

// Result is the outcome of rolling a Spec.
type Result struct {
	Spec  Spec
	Rolls []int
	Total int
}

// Detail renders the individual rolls, e.g. "Rolls: [3, 5] +2".
func (r Result) Detail() string {
	parts := make([]string, len(r.Rolls))
	for i, v := range r.Rolls {
		parts[i] = strconv.Itoa(v)
	}
	out := "Rolls: [" + strings.Join(parts, ", ") + "]"
	if r.Spec.Modifier != 0 {
		out += fmt.Sprintf(" %+d", r.Spec.Modifier)
	}
	return out
}

// Roller draws dice from its own random source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller seeded with seed, or with a crypto/rand seed
// when seed is 0.
func NewRoller(seed int64) (*Roller, error) {
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return nil, err
		}
	}
	return &Roller{rng: rand.New(rand.NewSource(seed))}, nil
}

// RollSingle rolls one die, uniform in [1, sides].
func (r *Roller) RollSingle(sides int) (int, error) {
	if sides < 1 {
		return 0, fmt.Errorf("%w: d%d", ErrInvalidSpec, sides)
	}
	return r.rollDie(sides), nil
}

// Roll rolls spec.Count dice, sums them and adds the modifier. A count
// of zero rolls nothing and totals the modifier.
func (r *Roller) Roll(spec Spec) (Result, error) {
	if spec.Sides < 1 {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidSpec, spec)
	}
	if spec.Count < 0 || spec.Count > MaxCount {
		return Result{}, fmt.Errorf("%w: count must be between 0 and %d, got %d", ErrInvalidSpec, MaxCount, spec.Count)
	}
	rolls := make([]int, spec.Count)
	total := 0
	for i := range rolls {
		rolls[i] = r.rollDie(spec.Sides)
		total += rolls[i]
	}
	return Result{Spec: spec, Rolls: rolls, Total: total + spec.Modifier}, nil
}

// RollNotation parses text and rolls it.
func (r *Roller) RollNotation(text string) (Result, error) {
	spec, err := ParseNotation(text)
	if err != nil {
		return Result{}, err
	}
	return r.Roll(spec)
}

func (r *Roller) rollDie(sides int) int {
	return r.rng.Intn(sides) + 1
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

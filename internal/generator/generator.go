// Package generator builds arithmetic problems and shuffled orderings.
package generator

import (
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

type bounds struct {
	min int
	max int
}

// Operand ranges for addition and subtraction.
var sumBounds = map[model.Difficulty]bounds{
	model.Easy:   {min: 1, max: 10},
	model.Medium: {min: 5, max: 20},
	model.Hard:   {min: 10, max: 50},
}

// Upper factor bound for multiplication and division; factors start at 1.
var productBounds = map[model.Difficulty]int{
	model.Easy:   10,
	model.Medium: 12,
	model.Hard:   15,
}

// Generator produces randomized problems.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Rand exposes the underlying source for callers that pick messages or tiles.
func (g *Generator) Rand() *rand.Rand {
	return g.rnd
}

// Problem generates one problem for op at difficulty d.
// Unknown difficulties use the easy ranges; an unknown operator yields a
// zero-valued problem and a warning.
func (g *Generator) Problem(op model.Operator, d model.Difficulty) model.Problem {
	sb, ok := sumBounds[d]
	if !ok {
		d = model.Easy
		sb = sumBounds[d]
	}
	pb := productBounds[d]

	p := model.Problem{ID: newID(g.rnd), Operator: op}
	switch op {
	case model.OpAdd:
		p.A = g.between(sb.min, sb.max)
		p.B = g.between(sb.min, sb.max)
		p.Answer = p.A + p.B
	case model.OpSubtract:
		p.A = g.between(sb.min, sb.max)
		p.B = g.between(1, p.A)
		p.Answer = p.A - p.B
	case model.OpMultiply:
		p.A = g.between(1, pb)
		p.B = g.between(1, pb)
		p.Answer = p.A * p.B
	case model.OpDivide:
		p.B = g.between(1, pb)
		p.Answer = g.between(1, pb)
		p.A = p.B * p.Answer
	default:
		slog.Warn("unknown operator, returning empty problem", "operator", string(op))
	}
	return p
}

// Problems generates n problems in a row.
func (g *Generator) Problems(op model.Operator, d model.Difficulty, n int) []model.Problem {
	out := make([]model.Problem, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Problem(op, d))
	}
	return out
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}

// Shuffle returns a uniformly permuted copy of items (Fisher-Yates).
func Shuffle[T any](g *Generator, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Perm returns a uniform permutation of [0, n).
func (g *Generator) Perm(n int) []int {
	return g.rnd.Perm(n)
}

// NewID returns a time-ordered unique identifier for problems and sessions.
func (g *Generator) NewID() string {
	return newID(g.rnd)
}

func newID(rnd *rand.Rand) string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatInt(rnd.Int63(), 36)
	}
	return id.String()
}

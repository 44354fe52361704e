package stats

import "github.com/LaduClassic/liyahs-learning-jour/internal/model"

// WeakestOperator returns the practiced operator with the lowest accuracy.
// Ties go to the operator listed first in model.Operators. ok is false when
// nothing has been practiced yet.
func WeakestOperator(rec model.ProgressRecord) (op model.Operator, ok bool) {
	best := 101.0
	for _, candidate := range model.Operators {
		p, found := rec.Math[candidate]
		if !found || p.Attempted == 0 {
			continue
		}
		if p.Accuracy < best {
			best = p.Accuracy
			op = candidate
			ok = true
		}
	}
	return op, ok
}

package stats

import (
	"sort"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

// OperatorsByAttempts returns every operator ordered by problems attempted,
// most practiced first. Ties keep model.Operators order.
func OperatorsByAttempts(rec model.ProgressRecord) []model.Operator {
	type item struct {
		op    model.Operator
		total int
		rank  int
	}
	items := make([]item, 0, len(model.Operators))
	for i, op := range model.Operators {
		items = append(items, item{op: op, total: rec.Math[op].Attempted, rank: i})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].total == items[j].total {
			return items[i].rank < items[j].rank
		}
		return items[i].total > items[j].total
	})
	out := make([]model.Operator, 0, len(items))
	for _, it := range items {
		out = append(out, it.op)
	}
	return out
}

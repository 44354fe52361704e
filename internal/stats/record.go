package stats

import (
	"context"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	"github.com/LaduClassic/liyahs-learning-jour/internal/store"
)

// RecordSession folds s into the persisted progress record and saves it.
func RecordSession(ctx context.Context, st *store.Store, s model.SessionResult) (model.ProgressRecord, error) {
	rec, err := st.LoadProgress(ctx, NewRecord())
	if err != nil {
		return model.ProgressRecord{}, err
	}
	next := ApplySession(rec, s)
	if err := st.SaveProgress(ctx, next); err != nil {
		return model.ProgressRecord{}, err
	}
	return next, nil
}

package store

import (
	"context"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

// ProgressKey holds the learner's cumulative progress record.
const ProgressKey = "progress-data"

// LoadProgress returns the stored progress record, or def when none is stored.
func (s *Store) LoadProgress(ctx context.Context, def model.ProgressRecord) (model.ProgressRecord, error) {
	var rec model.ProgressRecord
	ok, err := s.Get(ctx, ProgressKey, &rec)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	if rec.Math == nil {
		rec.Math = def.Math
	}
	if rec.RecentSessions == nil {
		rec.RecentSessions = []model.SessionResult{}
	}
	return rec, nil
}

// SaveProgress stores rec under ProgressKey.
func (s *Store) SaveProgress(ctx context.Context, rec model.ProgressRecord) error {
	return s.Set(ctx, ProgressKey, rec)
}

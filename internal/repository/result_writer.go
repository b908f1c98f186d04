package repository

import (
	"context"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"gorm.io/gorm"
)

// ResultWriter persists the output of one analytics run.
type ResultWriter interface {
	// Persist writes patterns, the snapshot and insights in one transaction.
	// Nothing is written if any insert fails.
	Persist(ctx context.Context, patterns []domain.MoodPattern, snapshot *domain.MentalHealthScoreSnapshot, insights []domain.MentalHealthInsight) error
}

type resultWriter struct {
	db *gorm.DB
}

func NewResultWriter(db *gorm.DB) ResultWriter {
	return &resultWriter{db: db}
}

func (w *resultWriter) Persist(ctx context.Context, patterns []domain.MoodPattern, snapshot *domain.MentalHealthScoreSnapshot, insights []domain.MentalHealthInsight) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewPatternRepository(tx).CreateBatch(ctx, patterns); err != nil {
			return err
		}
		if snapshot != nil {
			if err := NewSnapshotRepository(tx).Create(ctx, snapshot); err != nil {
				return err
			}
		}
		return NewInsightRepository(tx).CreateBatch(ctx, insights)
	})
}

package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yoockh/facultyportal/internal/models"
)

type MarksRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Marks, error)
	Exists(ctx context.Context, userID string) (bool, error)
	Upsert(ctx context.Context, m *models.Marks) error
	Top(ctx context.Context, limit int) ([]models.Marks, error)
}

type marksRepo struct {
	db *gorm.DB
}

func NewMarksRepo(db *gorm.DB) MarksRepository {
	return &marksRepo{db: db}
}

var marksColumns = []string{
	"medium_weight", "hsc_weight", "ug_degree_weight", "pg_degree_weight", "mphil_weight",
	"ug_first_attempt_weight", "pg_first_attempt_weight", "experience_weight", "publications_weight",
	"total_weight", "inputs", "calculated_at",
}

func (r *marksRepo) GetByUserID(ctx context.Context, userID string) (*models.Marks, error) {
	var m models.Marks
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *marksRepo) Exists(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Marks{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, translate(err)
}

// Upsert inserts the row or overwrites every weight and bumps version.
func (r *marksRepo) Upsert(ctx context.Context, m *models.Marks) error {
	if m.Version == 0 {
		m.Version = 1
	}
	set := clause.AssignmentColumns(marksColumns)
	set = append(set, clause.Assignment{
		Column: clause.Column{Name: "version"},
		Value:  gorm.Expr("marks.version + 1"),
	})
	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: set,
		}).
		Create(m).Error)
}

func (r *marksRepo) Top(ctx context.Context, limit int) ([]models.Marks, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var rows []models.Marks
	err := r.db.WithContext(ctx).
		Order("total_weight DESC").
		Order("calculated_at ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, translate(err)
}

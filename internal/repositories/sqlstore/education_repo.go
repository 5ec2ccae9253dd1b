package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yoockh/facultyportal/internal/models"
)

type EducationRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Education, error)
	Upsert(ctx context.Context, e *models.Education) error
	Delete(ctx context.Context, userID string) error
}

type educationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) GetByUserID(ctx context.Context, userID string) (*models.Education, error) {
	var e models.Education
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *educationRepo) Upsert(ctx context.Context, e *models.Education) error {
	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(e).Error)
}

func (r *educationRepo) Delete(ctx context.Context, userID string) error {
	return affected(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Education{}))
}

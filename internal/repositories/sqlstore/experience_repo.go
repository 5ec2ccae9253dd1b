package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/yoockh/facultyportal/internal/models"
)

type ExperienceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Experience, error)
	ReplaceAll(ctx context.Context, userID string, rows []models.Experience) error
	Update(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, userID, id string) error
}

type experienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) ListByUser(ctx context.Context, userID string) ([]models.Experience, error) {
	var rows []models.Experience
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("from_date ASC").
		Find(&rows).Error
	return rows, translate(err)
}

func (r *experienceRepo) ReplaceAll(ctx context.Context, userID string, rows []models.Experience) error {
	return translate(replaceAll(r.db.WithContext(ctx), &models.Experience{}, userID, &rows, len(rows)))
}

func (r *experienceRepo) Update(ctx context.Context, e *models.Experience) error {
	res := r.db.WithContext(ctx).
		Model(&models.Experience{}).
		Where("id = ? AND user_id = ?", e.ID, e.UserID).
		Select("experience_type", "organization", "post_held", "salary_drawn", "from_date", "to_date").
		Updates(e)
	return affected(res)
}

func (r *experienceRepo) Delete(ctx context.Context, userID, id string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Experience{}))
}

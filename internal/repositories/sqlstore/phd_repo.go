package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yoockh/facultyportal/internal/models"
)

type PhDRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.PhD, error)
	Upsert(ctx context.Context, p *models.PhD) error
	Delete(ctx context.Context, userID string) error
}

type phdRepo struct {
	db *gorm.DB
}

func NewPhDRepo(db *gorm.DB) PhDRepository {
	return &phdRepo{db: db}
}

func (r *phdRepo) GetByUserID(ctx context.Context, userID string) (*models.PhD, error) {
	var p models.PhD
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *phdRepo) Upsert(ctx context.Context, p *models.PhD) error {
	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(p).Error)
}

func (r *phdRepo) Delete(ctx context.Context, userID string) error {
	return affected(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.PhD{}))
}

package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yoockh/facultyportal/internal/models"
)

type PersonalRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Personal, error)
	Upsert(ctx context.Context, p *models.Personal) error
}

type personalRepo struct {
	db *gorm.DB
}

func NewPersonalRepo(db *gorm.DB) PersonalRepository {
	return &personalRepo{db: db}
}

func (r *personalRepo) GetByUserID(ctx context.Context, userID string) (*models.Personal, error) {
	var p models.Personal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// Upsert keeps the stored photo when the new row carries none.
func (r *personalRepo) Upsert(ctx context.Context, p *models.Personal) error {
	cols := []string{
		"full_name", "reference_number", "date_of_birth", "age", "gender",
		"communication_address", "permanent_address", "religion", "community", "caste",
		"email", "mobile_number", "post", "department", "applied_date", "updated_at",
	}
	if len(p.Photo) > 0 || p.PhotoURL != "" {
		cols = append(cols, "photo", "photo_url")
	}
	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(cols),
		}).
		Create(p).Error)
}

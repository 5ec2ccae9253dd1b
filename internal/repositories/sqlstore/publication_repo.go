package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/yoockh/facultyportal/internal/models"
)

type PublicationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Publication, error)
	ReplaceAll(ctx context.Context, userID string, rows []models.Publication) error
	Update(ctx context.Context, p *models.Publication) error
	Delete(ctx context.Context, userID, id string) error
}

type publicationRepo struct {
	db *gorm.DB
}

func NewPublicationRepo(db *gorm.DB) PublicationRepository {
	return &publicationRepo{db: db}
}

func (r *publicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Publication, error) {
	var rows []models.Publication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, translate(err)
}

func (r *publicationRepo) ReplaceAll(ctx context.Context, userID string, rows []models.Publication) error {
	return translate(replaceAll(r.db.WithContext(ctx), &models.Publication{}, userID, &rows, len(rows)))
}

func (r *publicationRepo) Update(ctx context.Context, p *models.Publication) error {
	res := r.db.WithContext(ctx).
		Model(&models.Publication{}).
		Where("id = ? AND user_id = ?", p.ID, p.UserID).
		Select("journal_type", "journal_name", "publisher", "paper_title", "vol_no", "doi", "publication_date", "impact_factor").
		Updates(p)
	return affected(res)
}

func (r *publicationRepo) Delete(ctx context.Context, userID, id string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Publication{}))
}

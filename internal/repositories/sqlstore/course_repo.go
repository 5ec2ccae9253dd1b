package sqlstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yoockh/facultyportal/internal/models"
)

type CourseRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Course, error)
	ReplaceAll(ctx context.Context, userID string, rows []models.Course) error
	Delete(ctx context.Context, userID, id string) error
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) ListByUser(ctx context.Context, userID string) ([]models.Course, error) {
	var rows []models.Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, translate(err)
}

func (r *courseRepo) ReplaceAll(ctx context.Context, userID string, rows []models.Course) error {
	return translate(replaceAll(r.db.WithContext(ctx), &models.Course{}, userID, &rows, len(rows)))
}

func (r *courseRepo) Delete(ctx context.Context, userID, id string) error {
	return affected(r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Course{}))
}

type UserInfoRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserInfo, error)
	Upsert(ctx context.Context, info *models.UserInfo) error
}

type userInfoRepo struct {
	db *gorm.DB
}

func NewUserInfoRepo(db *gorm.DB) UserInfoRepository {
	return &userInfoRepo{db: db}
}

func (r *userInfoRepo) GetByUserID(ctx context.Context, userID string) (*models.UserInfo, error) {
	var info models.UserInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&info).Error; err != nil {
		return nil, translate(err)
	}
	return &info, nil
}

func (r *userInfoRepo) Upsert(ctx context.Context, info *models.UserInfo) error {
	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(info).Error)
}

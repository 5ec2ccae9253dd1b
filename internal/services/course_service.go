package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yoockh/facultyportal/internal/models"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/utils"
)

const defaultPlatform = "NPTEL"

// CourseService covers the courses list and the additional-information
// block submitted with it.
type CourseService interface {
	List(ctx context.Context, userID string) ([]models.Course, error)
	ReplaceAll(ctx context.Context, userID string, rows []models.Course) ([]models.Course, error)
	Delete(ctx context.Context, userID, id string) error
	GetInfo(ctx context.Context, userID string) (*models.UserInfo, error)
	SaveInfo(ctx context.Context, info *models.UserInfo) error
}

type courseService struct {
	courses sqlrepo.CourseRepository
	info    sqlrepo.UserInfoRepository
}

func NewCourseService(courses sqlrepo.CourseRepository, info sqlrepo.UserInfoRepository) CourseService {
	return &courseService{courses: courses, info: info}
}

func (s *courseService) List(ctx context.Context, userID string) ([]models.Course, error) {
	const op = "CourseService.List"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	rows, err := s.courses.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to fetch courses", err)
	}
	if rows == nil {
		rows = []models.Course{}
	}
	return rows, nil
}

func (s *courseService) ReplaceAll(ctx context.Context, userID string, rows []models.Course) ([]models.Course, error) {
	const op = "CourseService.ReplaceAll"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	now := time.Now().UTC()
	for i := range rows {
		rows[i].ID = uuid.NewString()
		rows[i].UserID = userID
		rows[i].CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		if rows[i].Platform == "" {
			rows[i].Platform = defaultPlatform
		}
	}
	if err := s.courses.ReplaceAll(ctx, userID, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to save courses", err)
	}
	return rows, nil
}

func (s *courseService) Delete(ctx context.Context, userID, id string) error {
	const op = "CourseService.Delete"

	if userID == "" || id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and id are required", nil)
	}
	if err := s.courses.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Course not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to delete course", err)
	}
	return nil
}

func (s *courseService) GetInfo(ctx context.Context, userID string) (*models.UserInfo, error) {
	const op = "CourseService.GetInfo"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	info, err := s.info.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Additional information not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Failed to fetch additional information", err)
	}
	return info, nil
}

func (s *courseService) SaveInfo(ctx context.Context, info *models.UserInfo) error {
	const op = "CourseService.SaveInfo"

	if info == nil || info.UserID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	info.UpdatedAt = time.Now().UTC()
	if err := s.info.Upsert(ctx, info); err != nil {
		return utils.E(utils.CodeInternal, op, "Failed to save additional information", err)
	}
	return nil
}

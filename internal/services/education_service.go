package services

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/facultyportal/internal/models"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/utils"
)

type EducationService interface {
	Get(ctx context.Context, userID string) (*models.Education, error)
	Upsert(ctx context.Context, e *models.Education) error
	Delete(ctx context.Context, userID string) error
}

type educationService struct {
	repo sqlrepo.EducationRepository
}

func NewEducationService(repo sqlrepo.EducationRepository) EducationService {
	return &educationService{repo: repo}
}

func (s *educationService) Get(ctx context.Context, userID string) (*models.Education, error) {
	const op = "EducationService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	e, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Education record not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get education record", err)
	}
	return e, nil
}

func (s *educationService) Upsert(ctx context.Context, e *models.Education) error {
	const op = "EducationService.Upsert"

	if e == nil || e.UserID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	e.UpdatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, e); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save education record", err)
	}
	return nil
}

func (s *educationService) Delete(ctx context.Context, userID string) error {
	const op = "EducationService.Delete"

	if userID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Education record not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete education record", err)
	}
	return nil
}

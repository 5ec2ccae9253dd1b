package services

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/facultyportal/internal/models"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/utils"
)

type PhDService interface {
	Get(ctx context.Context, userID string) (*models.PhD, error)
	Upsert(ctx context.Context, p *models.PhD) error
	Delete(ctx context.Context, userID string) error
}

type phdService struct {
	repo sqlrepo.PhDRepository
}

func NewPhDService(repo sqlrepo.PhDRepository) PhDService {
	return &phdService{repo: repo}
}

func (s *phdService) Get(ctx context.Context, userID string) (*models.PhD, error) {
	const op = "PhDService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "PhD record not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error fetching PhD data", err)
	}
	return p, nil
}

func (s *phdService) Upsert(ctx context.Context, p *models.PhD) error {
	const op = "PhDService.Upsert"

	if p == nil || p.UserID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if p.Status != models.PhDPursuing && p.YearOfCompletion == nil {
		return utils.Invalid(op, map[string]string{"year_of_completion": "Completion year is required"}, nil)
	}
	if p.YearOfCompletion != nil && *p.YearOfCompletion < p.YearOfRegistration {
		return utils.Invalid(op, map[string]string{"year_of_completion": "Completion year must not be before registration year"}, nil)
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "Failed to save PhD information", err)
	}
	return nil
}

func (s *phdService) Delete(ctx context.Context, userID string) error {
	const op = "PhDService.Delete"

	if userID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "PhD record not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to delete PhD information", err)
	}
	return nil
}

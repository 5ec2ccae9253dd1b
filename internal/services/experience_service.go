package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yoockh/facultyportal/internal/models"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/utils"
)

type ExperienceService interface {
	List(ctx context.Context, userID string) ([]models.Experience, error)
	ReplaceAll(ctx context.Context, userID string, rows []models.Experience) ([]models.Experience, error)
	Update(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, userID, id string) error
}

type experienceService struct {
	repo sqlrepo.ExperienceRepository
}

func NewExperienceService(repo sqlrepo.ExperienceRepository) ExperienceService {
	return &experienceService{repo: repo}
}

func (s *experienceService) List(ctx context.Context, userID string) ([]models.Experience, error) {
	const op = "ExperienceService.List"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to fetch experience", err)
	}
	if rows == nil {
		rows = []models.Experience{}
	}
	return rows, nil
}

// ReplaceAll stores the submitted list as the user's complete experience
// section. Ids are always reissued.
func (s *experienceService) ReplaceAll(ctx context.Context, userID string, rows []models.Experience) ([]models.Experience, error) {
	const op = "ExperienceService.ReplaceAll"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if err := checkDateOrder(op, rows); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range rows {
		rows[i].ID = uuid.NewString()
		rows[i].UserID = userID
		rows[i].CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
	}
	if err := s.repo.ReplaceAll(ctx, userID, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to save experience", err)
	}
	return rows, nil
}

func (s *experienceService) Update(ctx context.Context, e *models.Experience) error {
	const op = "ExperienceService.Update"

	if e == nil || e.UserID == "" || e.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and id are required", nil)
	}
	if err := checkDateOrder(op, []models.Experience{*e}); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Experience entry not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to update experience", err)
	}
	return nil
}

func (s *experienceService) Delete(ctx context.Context, userID, id string) error {
	const op = "ExperienceService.Delete"

	if userID == "" || id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and id are required", nil)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Experience entry not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to delete experience", err)
	}
	return nil
}

// checkDateOrder relies on dates already being validated as YYYY-MM-DD,
// which orders lexically.
func checkDateOrder(op string, rows []models.Experience) error {
	fields := map[string]string{}
	for i, r := range rows {
		if r.FromDate != "" && r.ToDate != "" && r.ToDate < r.FromDate {
			fields[fmt.Sprintf("[%d].toDate", i)] = "toDate must not be before fromDate"
		}
	}
	if len(fields) > 0 {
		return utils.Invalid(op, fields, nil)
	}
	return nil
}

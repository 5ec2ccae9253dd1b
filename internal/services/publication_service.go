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

type PublicationService interface {
	List(ctx context.Context, userID string) ([]models.Publication, error)
	ReplaceAll(ctx context.Context, userID string, rows []models.Publication) ([]models.Publication, error)
	Update(ctx context.Context, p *models.Publication) error
	Delete(ctx context.Context, userID, id string) error
}

type publicationService struct {
	repo sqlrepo.PublicationRepository
}

func NewPublicationService(repo sqlrepo.PublicationRepository) PublicationService {
	return &publicationService{repo: repo}
}

func (s *publicationService) List(ctx context.Context, userID string) ([]models.Publication, error) {
	const op = "PublicationService.List"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to fetch publications", err)
	}
	if rows == nil {
		rows = []models.Publication{}
	}
	return rows, nil
}

func (s *publicationService) ReplaceAll(ctx context.Context, userID string, rows []models.Publication) ([]models.Publication, error) {
	const op = "PublicationService.ReplaceAll"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	now := time.Now().UTC()
	for i := range rows {
		rows[i].ID = uuid.NewString()
		rows[i].UserID = userID
		rows[i].CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
	}
	if err := s.repo.ReplaceAll(ctx, userID, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Failed to save publications", err)
	}
	return rows, nil
}

func (s *publicationService) Update(ctx context.Context, p *models.Publication) error {
	const op = "PublicationService.Update"

	if p == nil || p.UserID == "" || p.ID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and id are required", nil)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Publication not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to update publication", err)
	}
	return nil
}

func (s *publicationService) Delete(ctx context.Context, userID, id string) error {
	const op = "PublicationService.Delete"

	if userID == "" || id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and id are required", nil)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Publication not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Failed to delete publication", err)
	}
	return nil
}

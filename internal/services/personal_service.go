package services

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yoockh/facultyportal/internal/models"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/storage"
	"github.com/yoockh/facultyportal/internal/utils"
)

// Photo is an already sniffed image upload.
type Photo struct {
	Data        []byte
	ContentType string
	Ext         string
}

type PersonalService interface {
	Get(ctx context.Context, userID string) (*models.Personal, error)
	Save(ctx context.Context, p *models.Personal, photo *Photo) error
}

type personalService struct {
	repo     sqlrepo.PersonalRepository
	uploader storage.Uploader
}

// NewPersonalService stores photos in-row when uploader is nil.
func NewPersonalService(repo sqlrepo.PersonalRepository, uploader storage.Uploader) PersonalService {
	return &personalService{repo: repo, uploader: uploader}
}

func (s *personalService) Get(ctx context.Context, userID string) (*models.Personal, error) {
	const op = "PersonalService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "No personal data found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Database error", err)
	}
	return p, nil
}

func (s *personalService) Save(ctx context.Context, p *models.Personal, photo *Photo) error {
	const op = "PersonalService.Save"

	if p == nil || p.UserID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	if photo != nil && len(photo.Data) > 0 {
		if s.uploader == nil {
			p.Photo = photo.Data
			p.PhotoURL = ""
		} else {
			name := storage.PhotoObjectName(p.UserID, uuid.NewString(), photo.Ext)
			url, err := s.uploader.Upload(ctx, name, photo.ContentType, bytes.NewReader(photo.Data))
			if err != nil {
				return utils.E(utils.CodeUnavailable, op, "failed to upload photo", err)
			}
			p.Photo = nil
			p.PhotoURL = url
		}
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "Database error", err)
	}
	return nil
}

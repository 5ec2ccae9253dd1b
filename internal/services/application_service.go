package services

import (
	"context"
	"errors"

	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/utils"
)

// ApplicationService finalises an application: the weight is recalculated
// from the stored sections and the account is flagged as submitted.
type ApplicationService interface {
	Submit(ctx context.Context, userID string) (*CalculationResult, error)
}

type applicationService struct {
	users sqlrepo.UserRepository
	marks MarksService
}

func NewApplicationService(users sqlrepo.UserRepository, marks MarksService) ApplicationService {
	return &applicationService{users: users, marks: marks}
}

func (s *applicationService) Submit(ctx context.Context, userID string) (*CalculationResult, error) {
	const op = "ApplicationService.Submit"

	res, err := s.marks.Calculate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetFormSubmitted(ctx, userID, true); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to mark application as submitted", err)
	}
	res.Message = "Application submitted successfully"
	return res, nil
}

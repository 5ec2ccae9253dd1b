package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/yoockh/facultyportal/internal/cache"
	"github.com/yoockh/facultyportal/internal/models"
	mongorepo "github.com/yoockh/facultyportal/internal/repositories/mongo"
	sqlrepo "github.com/yoockh/facultyportal/internal/repositories/sqlstore"
	"github.com/yoockh/facultyportal/internal/scoring"
	"github.com/yoockh/facultyportal/internal/utils"
)

const marksCacheTTL = 10 * time.Minute

type CalculationResult struct {
	Message string          `json:"message"`
	Weights scoring.Weights `json:"weights"`
	Created bool            `json:"-"`
}

type MarksService interface {
	Calculate(ctx context.Context, userID string) (*CalculationResult, error)
	Get(ctx context.Context, userID string) (*models.Marks, error)
	History(ctx context.Context, userID string, limit int64) ([]models.MarksHistory, error)
	Ranking(ctx context.Context, limit int) ([]models.Marks, error)
}

type marksService struct {
	inputs  ScoringInputsLoader
	marks   sqlrepo.MarksRepository
	history mongorepo.MarksHistoryRepository
	locker  cache.Locker
	cache   cache.Cache
	log     *logrus.Logger
	now     func() time.Time
	encode  func(any) ([]byte, error)
}

func NewMarksService(
	inputs ScoringInputsLoader,
	marks sqlrepo.MarksRepository,
	history mongorepo.MarksHistoryRepository,
	locker cache.Locker,
	c cache.Cache,
	log *logrus.Logger,
) MarksService {
	if history == nil {
		history = mongorepo.NoopHistory{}
	}
	if c == nil {
		c = cache.Noop{}
	}
	return &marksService{
		inputs:  inputs,
		marks:   marks,
		history: history,
		locker:  locker,
		cache:   c,
		log:     log,
		now:     time.Now,
		encode:  json.Marshal,
	}
}

// Calculate recomputes the weights from stored sections and upserts the
// marks row. Calls for the same user are serialised by the locker so the
// read-compute-write sequence of one call is never interleaved with another.
func (s *marksService) Calculate(ctx context.Context, userID string) (*CalculationResult, error) {
	const op = "MarksService.Calculate"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	release, err := s.locker.Acquire(ctx, cache.LockKey(userID))
	if err != nil {
		if errors.Is(err, cache.ErrLockTimeout) {
			return nil, utils.E(utils.CodeConflict, op, "a calculation for this user is already running", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "could not acquire calculation lock", err)
	}
	defer release()

	in, err := s.inputs.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	weights, err := scoring.Calculate(in)
	if errors.Is(err, scoring.ErrNoEducation) {
		return nil, utils.E(utils.CodeNotFound, op, "User education data not found", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error calculating marks", err)
	}

	exists, err := s.marks.Exists(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error checking existing marks", err)
	}

	row := weights.Marks(userID)
	row.CalculatedAt = s.now().UTC()
	if b, err := s.encode(scoring.NewSnapshot(in)); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("marks inputs snapshot dropped")
	} else {
		row.Inputs = datatypes.JSON(b)
	}

	if err := s.marks.Upsert(ctx, row); err != nil {
		msg := "Error inserting marks"
		if exists {
			msg = "Error updating marks"
		}
		return nil, utils.E(utils.CodeInternal, op, msg, err)
	}

	if err := s.cache.Del(ctx, cache.MarksKey(userID)); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("marks cache invalidation failed")
	}

	h := &models.MarksHistory{
		UserID:           userID,
		Weights:          weights.Map(),
		ExperienceCount:  len(in.Experience),
		PublicationCount: len(in.Publications),
		Created:          !exists,
		CalculatedAt:     row.CalculatedAt,
	}
	if err := s.history.Append(ctx, h); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("marks history append failed")
	}

	s.log.WithFields(logrus.Fields{
		"user_id":      userID,
		"total_weight": weights.Total,
		"created":      !exists,
	}).Info("marks calculated")

	res := &CalculationResult{Message: "Marks calculated successfully", Weights: weights, Created: !exists}
	if exists {
		res.Message = "Marks updated successfully"
	}
	return res, nil
}

// Get is cache-aside. A miss fills the cache under the calculation lock so
// a row read before a concurrent Calculate cannot be cached after it.
func (s *marksService) Get(ctx context.Context, userID string) (*models.Marks, error) {
	const op = "MarksService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	var cached models.Marks
	hit, err := s.cache.GetJSON(ctx, cache.MarksKey(userID), &cached)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("marks cache read failed")
	}
	if hit {
		return &cached, nil
	}

	release, lockErr := s.locker.Acquire(ctx, cache.LockKey(userID))
	if lockErr == nil {
		defer release()
	}

	m, err := s.marks.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Marks not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving marks", err)
	}

	if lockErr != nil {
		s.log.WithError(lockErr).WithField("user_id", userID).Warn("marks cache fill skipped")
		return m, nil
	}
	if err := s.cache.SetJSON(ctx, cache.MarksKey(userID), m, marksCacheTTL); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("marks cache write failed")
	}
	return m, nil
}

func (s *marksService) History(ctx context.Context, userID string, limit int64) ([]models.MarksHistory, error) {
	const op = "MarksService.History"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	rows, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "Error retrieving marks history", err)
	}
	if rows == nil {
		rows = []models.MarksHistory{}
	}
	return rows, nil
}

func (s *marksService) Ranking(ctx context.Context, limit int) ([]models.Marks, error) {
	const op = "MarksService.Ranking"

	rows, err := s.marks.Top(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving marks", err)
	}
	if rows == nil {
		rows = []models.Marks{}
	}
	return rows, nil
}

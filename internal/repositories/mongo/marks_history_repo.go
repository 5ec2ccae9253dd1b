package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yoockh/facultyportal/internal/models"
)

const MarksHistoryCollection = "marks_history"

type MarksHistoryRepository interface {
	Append(ctx context.Context, h *models.MarksHistory) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.MarksHistory, error)
}

type marksHistoryRepo struct {
	col *mongo.Collection
}

func NewMarksHistoryRepo(db *mongo.Database) MarksHistoryRepository {
	return &marksHistoryRepo{col: db.Collection(MarksHistoryCollection)}
}

func (r *marksHistoryRepo) Append(ctx context.Context, h *models.MarksHistory) error {
	if h.CalculatedAt.IsZero() {
		h.CalculatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, h)
	return err
}

func (r *marksHistoryRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.MarksHistory, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "calculated_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []models.MarksHistory{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// NoopHistory is used when no document store is configured.
type NoopHistory struct{}

func (NoopHistory) Append(context.Context, *models.MarksHistory) error { return nil }

func (NoopHistory) ListByUser(context.Context, string, int64) ([]models.MarksHistory, error) {
	return []models.MarksHistory{}, nil
}

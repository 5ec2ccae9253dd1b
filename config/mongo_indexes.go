package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongorepo "github.com/yoockh/facultyportal/internal/repositories/mongo"
)

func EnsureMongoIndexes() error {
	db, err := MongoDatabase()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	history := db.Collection(mongorepo.MarksHistoryCollection)
	_, err = history.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "calculated_at", Value: -1}},
			Options: options.Index().SetName("by_user_calculated"),
		},
		{
			Keys:    bson.D{{Key: "calculated_at", Value: -1}},
			Options: options.Index().SetName("by_calculated"),
		},
	})
	return err
}

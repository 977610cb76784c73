package db

import (
	"context"

	"Vitals360/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewStore struct {
	coll *mongo.Collection
}

func NewReviewStore(database *mongo.Database) *ReviewStore {
	return &ReviewStore{coll: database.Collection(ReviewCollection)}
}

// List returns every review, newest first.
func (s *ReviewStore) List(ctx context.Context) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewStore) Create(ctx context.Context, review models.Review) error {
	_, err := s.coll.InsertOne(ctx, review)
	return err
}

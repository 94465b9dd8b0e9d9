package data_access

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog-backend/models"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *MongoDB) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection("reviews")}
}

// Upsert atomically creates or replaces the user's review for a movie. The
// compound unique index on (user_id, movie_id) backs the single-review
// invariant; a read-then-write pair would leave a race window here.
func (r *ReviewRepository) Upsert(ctx context.Context, userID primitive.ObjectID, movieID string, rating int, text string) (*models.Review, error) {
	now := time.Now().UTC()

	filter := bson.M{"user_id": userID, "movie_id": movieID}
	update := bson.M{
		"$set": bson.M{
			"rating":     rating,
			"review":     text,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"movie_id":   movieID,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var review models.Review
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes the user's review for a movie. Deleting a review that does
// not exist is a no-op.
func (r *ReviewRepository) Delete(ctx context.Context, userID primitive.ObjectID, movieID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "movie_id": movieID})
	return err
}

func (r *ReviewRepository) FindOwn(ctx context.Context, userID primitive.ObjectID, movieID string) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "movie_id": movieID}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListForMovie returns all reviews for a movie, newest first, each joined with
// the reviewing user's display name only.
func (r *ReviewRepository) ListForMovie(ctx context.Context, movieID string) ([]models.MovieReview, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"movie_id": movieID}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "reviewer",
		}}},
		{{Key: "$unwind", Value: "$reviewer"}},
		{{Key: "$addFields", Value: bson.M{"username": "$reviewer.username"}}},
		{{Key: "$project", Value: bson.M{"reviewer": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.MovieReview{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteAllForUser removes every review owned by the user; used when the
// account is deleted.
func (r *ReviewRepository) DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

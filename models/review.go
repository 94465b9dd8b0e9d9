package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review holds one rating + text per (user, movie) pair. The reviews
// collection carries a compound unique index on (user_id, movie_id).
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	MovieID   string             `bson:"movie_id" json:"movieId"`
	Rating    int                `bson:"rating" json:"rating"`
	Review    string             `bson:"review" json:"review"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// MovieReview is a review joined with the reviewer's display name. Only the
// username is exposed, no other user fields.
type MovieReview struct {
	Review   `bson:",inline"`
	Username string `bson:"username" json:"username"`
}

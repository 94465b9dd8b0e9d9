package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	// Identity
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`

	// Favorites - embedded list, at most one entry per IMDb id
	Favorites []Favorite `bson:"favorites" json:"favorites"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Favorite is embedded in the user document; it has no independent lifecycle.
type Favorite struct {
	IMDBID string `bson:"imdb_id" json:"imdbID"`
	Title  string `bson:"title" json:"title"`
	Poster string `bson:"poster" json:"poster"`
	Year   string `bson:"year" json:"year"`
}

// UserSummary is the public identity shape returned with tokens.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
	}
}

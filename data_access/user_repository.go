package data_access

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog-backend/models"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces the identity and credential fields. Unique-index violations
// from a concurrent registration surface as ErrDuplicate.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{
		"username": user.Username,
		"email":    user.Email,
		"password": user.Password,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PushFavorite appends a favorite unless one with the same IMDb id is already
// embedded. The dedup check and the append are a single atomic update, so two
// concurrent adds cannot both succeed.
func (r *UserRepository) PushFavorite(ctx context.Context, userID primitive.ObjectID, favorite models.Favorite) error {
	filter := bson.M{
		"_id":               userID,
		"favorites.imdb_id": bson.M{"$ne": favorite.IMDBID},
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"favorites": favorite}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the user is gone or the movie is already favorited.
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": userID})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrDuplicate
	}
	return nil
}

// PullFavorite removes a favorite by IMDb id. Pulling an id that is not
// present matches the user document and modifies nothing, which keeps the
// operation idempotent.
func (r *UserRepository) PullFavorite(ctx context.Context, userID primitive.ObjectID, imdbID string) error {
	update := bson.M{"$pull": bson.M{"favorites": bson.M{"imdb_id": imdbID}}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Favorites(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	opts := options.FindOne().SetProjection(bson.M{"favorites": 1})

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if user.Favorites == nil {
		return []models.Favorite{}, nil
	}
	return user.Favorites, nil
}

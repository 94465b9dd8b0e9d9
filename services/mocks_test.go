package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-backend/data_access"
	"movie-catalog-backend/models"
)

// mockUserRepository is an in-memory UserRepository mirroring the mongo
// implementation's error contract.
type mockUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return data_access.ErrDuplicate
		}
	}

	user.ID = primitive.NewObjectID()
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, data_access.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findBy(func(u *models.User) bool { return u.Email == email })
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.findBy(func(u *models.User) bool { return u.Username == username })
}

func (m *mockUserRepository) findBy(match func(*models.User) bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if match(user) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, data_access.ErrNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[user.ID]
	if !ok {
		return data_access.ErrNotFound
	}

	for id, other := range m.users {
		if id != user.ID && (other.Username == user.Username || other.Email == user.Email) {
			return data_access.ErrDuplicate
		}
	}

	stored.Username = user.Username
	stored.Email = user.Email
	stored.Password = user.Password
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return data_access.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepository) PushFavorite(ctx context.Context, userID primitive.ObjectID, favorite models.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return data_access.ErrNotFound
	}
	for _, existing := range user.Favorites {
		if existing.IMDBID == favorite.IMDBID {
			return data_access.ErrDuplicate
		}
	}
	user.Favorites = append(user.Favorites, favorite)
	return nil
}

func (m *mockUserRepository) PullFavorite(ctx context.Context, userID primitive.ObjectID, imdbID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return data_access.ErrNotFound
	}

	filtered := user.Favorites[:0]
	for _, favorite := range user.Favorites {
		if favorite.IMDBID != imdbID {
			filtered = append(filtered, favorite)
		}
	}
	user.Favorites = filtered
	return nil
}

func (m *mockUserRepository) Favorites(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, data_access.ErrNotFound
	}
	favorites := make([]models.Favorite, len(user.Favorites))
	copy(favorites, user.Favorites)
	return favorites, nil
}

// mockReviewRepository is an in-memory ReviewRepository enforcing the one
// review per (user, movie) invariant the same way the compound index does.
type mockReviewRepository struct {
	mu        sync.Mutex
	reviews   map[string]*models.Review
	usernames map[primitive.ObjectID]string
}

func newMockReviewRepository() *mockReviewRepository {
	return &mockReviewRepository{
		reviews:   make(map[string]*models.Review),
		usernames: make(map[primitive.ObjectID]string),
	}
}

func reviewKey(userID primitive.ObjectID, movieID string) string {
	return userID.Hex() + "|" + movieID
}

func (m *mockReviewRepository) Upsert(ctx context.Context, userID primitive.ObjectID, movieID string, rating int, text string) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	key := reviewKey(userID, movieID)

	if existing, ok := m.reviews[key]; ok {
		existing.Rating = rating
		existing.Review = text
		existing.UpdatedAt = now
		clone := *existing
		return &clone, nil
	}

	review := &models.Review{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		MovieID:   movieID,
		Rating:    rating,
		Review:    text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.reviews[key] = review
	clone := *review
	return &clone, nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, userID primitive.ObjectID, movieID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.reviews, reviewKey(userID, movieID))
	return nil
}

func (m *mockReviewRepository) FindOwn(ctx context.Context, userID primitive.ObjectID, movieID string) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	review, ok := m.reviews[reviewKey(userID, movieID)]
	if !ok {
		return nil, data_access.ErrNotFound
	}
	clone := *review
	return &clone, nil
}

func (m *mockReviewRepository) ListForMovie(ctx context.Context, movieID string) ([]models.MovieReview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := []models.MovieReview{}
	for _, review := range m.reviews {
		if review.MovieID != movieID {
			continue
		}
		result = append(result, models.MovieReview{
			Review:   *review,
			Username: m.usernames[review.UserID],
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockReviewRepository) DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, review := range m.reviews {
		if review.UserID == userID {
			delete(m.reviews, key)
		}
	}
	return nil
}

package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries only the fields being changed; empty fields are
// left as-is. Setting a new password requires the current one.
type UpdateProfileRequest struct {
	Username        string `json:"username" binding:"omitempty,min=3"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=8"`
}

type AddFavoriteRequest struct {
	IMDBID string `json:"imdbID" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Poster string `json:"poster"`
	Year   string `json:"year"`
}

type UpsertReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review" binding:"required,max=1000"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// ErrorResponse is the uniform error body. Errors is populated only for
// field-validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

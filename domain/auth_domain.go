package domain

import "time"

var (
	MessageSuccessLogin        = "logged in successfully"
	MessageSuccessSignup       = "Farmer signed up successfully!"
	MessageSuccessCheckSession = "session is active"
	MessageSuccessLogout       = "Logged out successfully"

	MessageFailedLogin        = "failed to log in"
	MessageFailedSignup       = "failed to sign up farmer"
	MessageFailedCheckSession = "failed to check session"
	MessageFailedLogout       = "failed to log out"

	ErrInvalidCredentials     = &AppError{Kind: KindNotAuthorized, Message: "Invalid email or password"}
	ErrEmailAlreadyRegistered = &AppError{Kind: KindConflict, Message: "Farmer with this email already exists."}
	ErrSessionNotFound        = &AppError{Kind: KindNotAuthorized, Message: "session not found"}
	ErrSessionExpired         = &AppError{Kind: KindNotAuthorized, Message: "session expired"}
	ErrTokenInvalid           = &AppError{Kind: KindNotAuthorized, Message: "session token invalid"}
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	SignupRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
		Address  string `json:"address" validate:"required"`
	}

	AuthResponse struct {
		Farmer    FarmerResponse `json:"farmer"`
		Token     string         `json:"token"`
		ExpiresAt time.Time      `json:"expires_at"`
	}
)

package auth

// RegisterRequest represents the request payload for creating a new account.
type RegisterRequest struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterResponse represents the response payload after registration.
type RegisterResponse struct {
	ID int64
}

// LoginRequest represents the credentials for authentication.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginResponse carries the issued token and the authenticated profile.
type LoginResponse struct {
	Token string
	User  Profile
}

// Profile is the authenticated user's public view.
type Profile struct {
	ID       int64
	Username string
	Email    string
}

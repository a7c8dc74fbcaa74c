package user

// UpdateUserRequest represents the request payload for updating an existing user.
type UpdateUserRequest struct {
	ID       int64  `validate:"required"`
	Username string `validate:"omitempty,min=3,max=50"`
	Email    string `validate:"omitempty,email"`
}

// UpdateUserResponse represents the response payload after updating a user.
type UpdateUserResponse struct {
	ID int64
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// DeleteUserResponse represents the response payload after deleting a user.
type DeleteUserResponse struct {
	ID int64
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// GetUserResponse represents the response payload for user details.
type GetUserResponse struct {
	ID       int64
	Username string
	Email    string
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}

// User represents a user DTO (Data Transfer Object) for API responses.
// The stored credential is deliberately absent.
type User struct {
	ID       int64
	Username string
	Email    string
}

package user

// User represents a reader account in the system.
type User struct {
	ID       int64  // ID is the unique identifier for the user
	Username string // Username is the unique display name
	Email    string // Email is the unique email address of the user
	Password string // Password is the stored bcrypt hash, never the plaintext
}

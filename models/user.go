package models

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier.
	// Typically used during authentication.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext, and is never
	// serialized to JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

package models

// Role is the access level of a user account
type Role string

// Role constants
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a user in the system.
// Quadrant is nil for admin accounts.
type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"` // Never serialize password hash
	Role         Role    `json:"role"`
	Quadrant     *string `json:"quadrant"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
// Email carries the username; the field name is kept for existing clients.
type LoginResponse struct {
	Status   string  `json:"status"`
	Email    string  `json:"email"`
	Role     Role    `json:"role"`
	Quadrant *string `json:"quadrant"`
	Token    string  `json:"token,omitempty"`
}

package models

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Meta
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"` // bcrypt hash, never plaintext
	Role     UserRole `json:"role"`
	Phone    string   `json:"phone,omitempty"`
}

// Redacted returns a copy of the user safe to hand back to callers.
func (u User) Redacted() User {
	u.Password = ""
	return u
}

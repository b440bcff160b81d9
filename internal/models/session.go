package models

// Role is the principal kind returned by the REST API on sign-in.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the authenticated principal. Role is not restricted here: an
// unknown role still decodes and is routed to the public pages.
type User struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"required"`
}

// Session is what POST /sessions returns.
type Session struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user" validate:"required"`
}

// Credentials is the sign-in request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp is the POST /users request body.
type SignUp struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

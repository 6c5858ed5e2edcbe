package session

// RegisterRequest carries the profile fields collected at registration.
// ID, enrollment list, and join date are generated by the store.
type RegisterRequest struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required,max=20"`
	Village string `validate:"required,max=100"`
	State   string `validate:"required,max=100"`
}

// LoginRequest carries login credentials. The password is accepted for API
// compatibility with the portal's login form but is never stored or
// checked; accounts carry no credential.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string
}

// UpdateProfileRequest is a partial profile patch. Empty fields are left
// unchanged; non-empty fields replace the stored value (last write wins).
type UpdateProfileRequest struct {
	Name    string `validate:"omitempty,min=2,max=100"`
	Email   string `validate:"omitempty,email"`
	Phone   string `validate:"omitempty,max=20"`
	Village string `validate:"omitempty,max=100"`
	State   string `validate:"omitempty,max=100"`
}

package types

// RegisterRequest is the registration input. The plaintext password exists
// only for the lifetime of the request and must never be logged or echoed.
type RegisterRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse wraps the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

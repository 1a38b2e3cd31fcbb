package api

// CreateAccountRequest defines the payload for POST /accounts.
type CreateAccountRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateSessionRequest defines the payload for POST /sessions.
type CreateSessionRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned by a successful login.
type SessionResponse struct {
	// AccessToken is the bearer token for authorized endpoints.
	AccessToken string `json:"access_token"`
}

// CreateQuestionRequest defines the payload for POST /questions.
type CreateQuestionRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

package apidocs

// HealthResponse is the shape of /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	DB     string `json:"db" example:"ok"`
}

// UserRequest is the body accepted by create and update.
type UserRequest struct {
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

// UserResponse represents a user for responses.
type UserResponse struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@example.com"`
}

type CreatedResponse struct {
	Message string `json:"message" example:"User created successfully"`
	ID      int64  `json:"id" example:"1"`
}

type MessageResponse struct {
	Message string `json:"message" example:"User updated successfully"`
}

// ErrorEnvelope matches responses.ErrorResponse.
type ErrorEnvelope struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"User not found"`
}

package user

// UserRequest is the body of POST /users and PUT /users/{id}.
type UserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

const (
	msgNoData        = "No data provided"
	msgMissingFields = "Missing name or email"
	msgUserNotFound  = "User not found"
	msgUserCreated   = "User created successfully"
	msgUserUpdated   = "User updated successfully"
	msgUserDeleted   = "User deleted successfully"
)

package request_models

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

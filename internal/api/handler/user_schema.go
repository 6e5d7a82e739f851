package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type newUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,username"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

type UpdatedResponse struct {
	Updated bool `json:"updated"`
}

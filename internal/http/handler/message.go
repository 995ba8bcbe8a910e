package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

type okResponse struct {
	OK bool  `json:"ok"`
	ID *uint `json:"id,omitempty"`
}

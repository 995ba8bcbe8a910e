package payload

import (
	"hirebox/internal/core"

	"github.com/jellydator/validation"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a LoginRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Email, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a LoginRequest) ToCoreMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    a.Email,
		Password: a.Password,
	}
}

package payload

import (
	"hirebox/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (a RegisterRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Email, validation.Required, is.EmailFormat),
		validation.Field(&a.Password, validation.Required),
		validation.Field(&a.Role, validation.Length(0, 32)),
	)
}

func (a RegisterRequest) ToCoreMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}

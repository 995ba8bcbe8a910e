package handler

import (
	"context"
	"net/http"

	"hirebox/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name HireboxService . HireboxService
type HireboxService interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	Login(ctx context.Context, msg core.LoginMessage) (core.Session, error)
	Submit(ctx context.Context, payload []byte) (uint, error)
	ListSubmissions(ctx context.Context) ([]core.SubmissionRecord, error)
	ListUsers(ctx context.Context) ([]core.UserRecord, error)
	Health(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

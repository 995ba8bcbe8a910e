package middleware

import "hirebox/internal/core"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authorizer . Authorizer
type Authorizer interface {
	Authorize(token string, role string) (core.Principal, error)
}

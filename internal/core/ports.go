package core

import (
	"context"

	"hirebox/internal/repository"
	tokenIssuer "hirebox/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	SeedUsers(ctx context.Context, users []repository.User) (int, error)
	CreateSubmission(ctx context.Context, submission repository.Submission) (repository.Submission, error)
	ListSubmissions(ctx context.Context) ([]repository.Submission, error)
	Ping(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (*tokenIssuer.Claims, error)
}

package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hirebox/internal/repository"
	tokenIssuer "hirebox/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var TimeNow = time.Now

// HashCost is the bcrypt work factor applied to new passwords.
const HashCost = bcrypt.DefaultCost

// Hirebox implements account registration, login, token authorization and
// submission storage on top of a Repository.
type Hirebox struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	tokenTTL  time.Duration
}

// NewHirebox is a constructor function for the Hirebox type.
func NewHirebox(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, tokenTTL time.Duration) *Hirebox {
	return &Hirebox{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		tokenTTL:  tokenTTL,
	}
}

// Register stores a new user with a bcrypt hash of the password. The email is
// lowercased and the role defaults to jobseeker.
func (h *Hirebox) Register(ctx context.Context, msg RegisterMessage) error {
	email := normalizeEmail(msg.Email)
	if email == "" || msg.Password == "" {
		return ErrMissingCredentials
	}

	role := msg.Role
	if role == "" {
		role = RoleJobseeker
	}

	hash, err := hashPassword(msg.Password)
	if err != nil {
		return err
	}

	user, err := h.repo.CreateUser(ctx, repository.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	h.logs.Infow("user registered", "userId", user.ID, "role", user.Role)
	return nil
}

// Login checks the credentials and issues a signed session token.
func (h *Hirebox) Login(ctx context.Context, msg LoginMessage) (Session, error) {
	email := normalizeEmail(msg.Email)
	if email == "" || msg.Password == "" {
		return Session{}, ErrMissingCredentials
	}

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return Session{}, ErrIncorrectPassword
	}

	token := h.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Expiration: h.tokenTTL,
	})
	signed, err := h.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		Token: signed,
		Role:  user.Role,
	}, nil
}

// Authorize validates a bearer token and requires the given role. A token
// that fails validation for any reason yields ErrInvalidToken.
func (h *Hirebox) Authorize(token string, role string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrInvalidToken
	}

	claims, err := h.jwtIssuer.Validate(token)
	if err != nil {
		h.logs.Debugw("token rejected", "error", err)
		return Principal{}, ErrInvalidToken
	}

	principal := Principal{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}
	if principal.Role != role {
		return principal, ErrInsufficientRole
	}

	return principal, nil
}

// ListUsers returns every user, newest first, without password hashes.
func (h *Hirebox) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := h.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = UserRecord{
			ID:    u.ID,
			Email: u.Email,
			Role:  u.Role,
		}
	}
	return records, nil
}

// Submit stores an arbitrary JSON document and returns its id. An empty body
// is stored as an empty object.
func (h *Hirebox) Submit(ctx context.Context, payload []byte) (uint, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, payload); err != nil {
		return 0, ErrInvalidPayload
	}

	submission, err := h.repo.CreateSubmission(ctx, repository.Submission{
		Data:      compacted.String(),
		CreatedAt: TimeNow().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("create submission: %w", err)
	}

	h.logs.Infow("submission stored", "submissionId", submission.ID, "size", compacted.Len())
	return submission.ID, nil
}

// ListSubmissions returns every submission, newest first.
func (h *Hirebox) ListSubmissions(ctx context.Context) ([]SubmissionRecord, error) {
	submissions, err := h.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	records := make([]SubmissionRecord, len(submissions))
	for i, s := range submissions {
		records[i] = SubmissionRecord{
			ID:        s.ID,
			Data:      s.Data,
			CreatedAt: s.CreatedAt.UTC().Format(createdAtLayout),
		}
	}
	return records, nil
}

// SeedAccounts inserts the given accounts unless their email is already
// registered. It returns the number of accounts created.
func (h *Hirebox) SeedAccounts(ctx context.Context, accounts []RegisterMessage) (int, error) {
	users := make([]repository.User, 0, len(accounts))
	for _, acc := range accounts {
		hash, err := hashPassword(acc.Password)
		if err != nil {
			return 0, fmt.Errorf("hash seed password for %s: %w", acc.Email, err)
		}
		users = append(users, repository.User{
			Email:        normalizeEmail(acc.Email),
			PasswordHash: hash,
			Role:         acc.Role,
		})
	}

	inserted, err := h.repo.SeedUsers(ctx, users)
	if err != nil {
		return inserted, fmt.Errorf("seed users: %w", err)
	}

	h.logs.Infow("demo accounts seeded", "inserted", inserted, "total", len(users))
	return inserted, nil
}

// Health reports whether the store is reachable.
func (h *Hirebox) Health(ctx context.Context) error {
	if err := h.repo.Ping(ctx); err != nil {
		return fmt.Errorf("store unavailable: %w", err)
	}
	return nil
}

// DemoAccounts lists the accounts created at startup, one per role.
func DemoAccounts(password string) []RegisterMessage {
	return []RegisterMessage{
		{Email: "employer@example.com", Password: password, Role: RoleEmployer},
		{Email: "jobseeker@example.com", Password: password, Role: RoleJobseeker},
		{Email: "admin@example.com", Password: password, Role: RoleAdmin},
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

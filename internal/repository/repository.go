package repository

import (
	"context"
	"errors"
	"fmt"

	"hirebox/internal/db"
)

var (
	ErrUserNotFound error = errors.New("user not found")
	ErrUserExists   error = errors.New("user already exists")
)

const newestFirst = "id DESC"

// Store persists users and submissions through a Storage backend.
type Store struct {
	db Storage
}

func NewStore(db Storage) *Store {
	return &Store{
		db: db,
	}
}

func (r *Store) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Submission{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// SeedUsers inserts every user whose email is not stored yet and reports how
// many rows were added. Running it again is a no-op.
func (r *Store) SeedUsers(ctx context.Context, users []User) (int, error) {
	inserted := 0
	for _, user := range users {
		_, err := r.GetUserByEmail(ctx, user.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrUserNotFound) {
			return inserted, fmt.Errorf("seed database: %w", err)
		}

		if _, err := r.CreateUser(ctx, user); err != nil {
			// another instance seeded the same email in the meantime
			if errors.Is(err, ErrUserExists) {
				continue
			}
			return inserted, fmt.Errorf("seed database: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

func (r *Store) CreateUser(ctx context.Context, user User) (User, error) {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (r *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "email", email, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *Store) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.ListAll(ctx, newestFirst, &users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *Store) CreateSubmission(ctx context.Context, submission Submission) (Submission, error) {
	err := r.db.Create(ctx, &submission)
	if err != nil {
		return Submission{}, fmt.Errorf("create submission: %w", err)
	}
	return submission, nil
}

func (r *Store) ListSubmissions(ctx context.Context) ([]Submission, error) {
	submissions := []Submission{}
	err := r.db.ListAll(ctx, newestFirst, &submissions)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}

func (r *Store) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping storage: %w", err)
	}
	return nil
}

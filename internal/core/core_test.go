package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"hirebox/internal/core"
	"hirebox/internal/core/fake"
	"hirebox/internal/repository"
	tokenIssuer "hirebox/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Hirebox", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		hirebox *core.Hirebox

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		hirebox = core.NewHirebox(fakeLogger, fakeRepo, fakeJWT, 24*time.Hour)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg core.RegisterMessage
			err error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Email:    "Alice@Example.com",
				Password: "pw123",
			}
			fakeRepo.CreateUserStub = func(ctx context.Context, user repository.User) (repository.User, error) {
				user.ID = 1
				return user, nil
			}
		})

		JustBeforeEach(func() {
			err = hirebox.Register(ctx, msg)
		})

		When("the email is new", func() {
			It("should store a lowercased user with the default role", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Email).To(Equal("alice@example.com"))
				Expect(user.Role).To(Equal(core.RoleJobseeker))
			})

			It("should store a bcrypt hash that only matches the exact password", func() {
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.PasswordHash).NotTo(Equal(msg.Password))

				cost, costErr := bcrypt.Cost([]byte(user.PasswordHash))
				Expect(costErr).NotTo(HaveOccurred())
				Expect(cost).To(Equal(core.HashCost))

				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123"))).To(Succeed())
				for _, mutated := range []string{"pw124", "Pw123", "pw12", "pw1234", "xw123"} {
					Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(mutated))).NotTo(Succeed())
				}
			})
		})

		When("a role is given", func() {
			BeforeEach(func() {
				msg.Role = core.RoleEmployer
			})

			It("should keep it", func() {
				Expect(err).NotTo(HaveOccurred())
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Role).To(Equal(core.RoleEmployer))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				msg.Password = ""
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrMissingCredentials))
				Expect(errors.Is(err, core.ErrValidation)).To(BeTrue())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the email is blank", func() {
			BeforeEach(func() {
				msg.Email = "   "
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrMissingCredentials))
			})
		})

		When("the password is longer than bcrypt accepts", func() {
			BeforeEach(func() {
				msg.Password = strings.Repeat("a", 73)
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrPasswordTooLong))
				Expect(errors.Is(err, core.ErrValidation)).To(BeTrue())
			})
		})

		When("the email is already registered", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should return a conflict", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(errors.Is(err, core.ErrConflict)).To(BeTrue())
				Expect(err.Error()).To(Equal("user exists"))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return an internal error", func() {
				Expect(err).To(MatchError(fakeErr))
				var coreErr *core.Error
				Expect(errors.As(err, &coreErr)).To(BeFalse())
			})
		})
	})

	Describe("Login", func() {
		var (
			msg            core.LoginMessage
			session        core.Session
			err            error
			hashedPassword string
			genToken       *jwt.Token
			storedUser     repository.User
		)

		BeforeEach(func() {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			hashedPassword = string(hash)
			genToken = jwt.New(jwt.SigningMethodHS512)

			msg = core.LoginMessage{
				Email:    "ALICE@example.com",
				Password: "pw123",
			}
			storedUser = repository.User{
				ID:           7,
				Email:        "alice@example.com",
				PasswordHash: hashedPassword,
				Role:         core.RoleJobseeker,
			}
			fakeRepo.GetUserByEmailReturns(storedUser, nil)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = hirebox.Login(ctx, msg)
		})

		When("user exists and password matches", func() {
			It("should return a signed token and the role", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Token).To(Equal("signed.token"))
				Expect(session.Role).To(Equal(core.RoleJobseeker))

				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(1))
				_, email := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(email).To(Equal("alice@example.com"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserID:     7,
					Email:      "alice@example.com",
					Role:       core.RoleJobseeker,
					Expiration: 24 * time.Hour,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(errors.Is(err, core.ErrUnauthorized)).To(BeTrue())
				Expect(err.Error()).To(Equal("no such user"))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				msg.Password = "pw124"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(err.Error()).To(Equal("wrong password"))
				Expect(fakeJWT.SignCallCount()).To(Equal(0))
			})
		})

		When("credentials are missing", func() {
			BeforeEach(func() {
				msg.Email = ""
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrMissingCredentials))
				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authorize", func() {
		var (
			token     string
			role      string
			principal core.Principal
			err       error
		)

		BeforeEach(func() {
			token = "valid.token"
			role = core.RoleAdmin
			fakeJWT.ValidateReturns(&tokenIssuer.Claims{
				UserID: 3,
				Email:  "admin@example.com",
				Role:   core.RoleAdmin,
			}, nil)
		})

		JustBeforeEach(func() {
			principal, err = hirebox.Authorize(token, role)
		})

		When("the token is valid and the role matches", func() {
			It("should return the principal", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(principal).To(Equal(core.Principal{ID: 3, Email: "admin@example.com", Role: core.RoleAdmin}))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal(token))
			})
		})

		When("the role does not match", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(&tokenIssuer.Claims{UserID: 4, Role: core.RoleJobseeker}, nil)
			})

			It("should be forbidden", func() {
				Expect(err).To(MatchError(core.ErrInsufficientRole))
				Expect(errors.Is(err, core.ErrForbidden)).To(BeTrue())
			})
		})

		When("the token does not validate", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should be unauthorized without detail", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(errors.Is(err, tokenIssuer.ErrTokenNotValid)).To(BeFalse())
			})
		})

		When("the token is empty", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should be unauthorized", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Submit", func() {
		var (
			payload  []byte
			id       uint
			err      error
			realTime func() time.Time
			now      time.Time
		)

		BeforeEach(func() {
			payload = []byte(`{ "foo": "bar" }`)
			now = time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))
			realTime = core.TimeNow
			core.TimeNow = func() time.Time { return now }
			fakeRepo.CreateSubmissionStub = func(ctx context.Context, s repository.Submission) (repository.Submission, error) {
				s.ID = 11
				return s, nil
			}
		})

		AfterEach(func() {
			core.TimeNow = realTime
		})

		JustBeforeEach(func() {
			id, err = hirebox.Submit(ctx, payload)
		})

		When("the payload is a JSON object", func() {
			It("should store it compacted with a UTC timestamp", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(id).To(Equal(uint(11)))
				_, stored := fakeRepo.CreateSubmissionArgsForCall(0)
				Expect(stored.Data).To(Equal(`{"foo":"bar"}`))
				Expect(stored.CreatedAt).To(Equal(now.UTC()))
				Expect(stored.CreatedAt.Location()).To(Equal(time.UTC))
			})
		})

		When("the payload is any other JSON value", func() {
			BeforeEach(func() {
				payload = []byte(`[1, 2, "three"]`)
			})

			It("should store it as is", func() {
				Expect(err).NotTo(HaveOccurred())
				_, stored := fakeRepo.CreateSubmissionArgsForCall(0)
				Expect(stored.Data).To(Equal(`[1,2,"three"]`))
			})
		})

		When("the payload is empty", func() {
			BeforeEach(func() {
				payload = nil
			})

			It("should store an empty object", func() {
				Expect(err).NotTo(HaveOccurred())
				_, stored := fakeRepo.CreateSubmissionArgsForCall(0)
				Expect(stored.Data).To(Equal("{}"))
			})
		})

		When("the payload is not JSON", func() {
			BeforeEach(func() {
				payload = []byte("foo=bar")
			})

			It("should return a validation error", func() {
				Expect(err).To(MatchError(core.ErrInvalidPayload))
				Expect(errors.Is(err, core.ErrValidation)).To(BeTrue())
				Expect(fakeRepo.CreateSubmissionCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateSubmissionStub = nil
				fakeRepo.CreateSubmissionReturns(repository.Submission{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(id).To(BeZero())
			})
		})
	})

	Describe("ListSubmissions", func() {
		When("submissions exist", func() {
			BeforeEach(func() {
				fakeRepo.ListSubmissionsReturns([]repository.Submission{
					{ID: 2, Data: `{"foo":"bar"}`, CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 678000000, time.UTC)},
					{ID: 1, Data: `[]`, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
				}, nil)
			})

			It("should keep the order and render ISO-8601 timestamps", func() {
				records, err := hirebox.ListSubmissions(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.SubmissionRecord{
					{ID: 2, Data: `{"foo":"bar"}`, CreatedAt: "2026-01-02T03:04:05.678Z"},
					{ID: 1, Data: `[]`, CreatedAt: "2026-01-01T00:00:00.000Z"},
				}))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.ListSubmissionsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := hirebox.ListSubmissions(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListUsers", func() {
		When("users exist", func() {
			BeforeEach(func() {
				fakeRepo.ListUsersReturns([]repository.User{
					{ID: 2, Email: "bob@example.com", PasswordHash: "secret-hash", Role: core.RoleEmployer},
					{ID: 1, Email: "alice@example.com", PasswordHash: "secret-hash", Role: core.RoleAdmin},
				}, nil)
			})

			It("should return ids, emails and roles only", func() {
				records, err := hirebox.ListUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.UserRecord{
					{ID: 2, Email: "bob@example.com", Role: core.RoleEmployer},
					{ID: 1, Email: "alice@example.com", Role: core.RoleAdmin},
				}))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.ListUsersReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := hirebox.ListUsers(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SeedAccounts", func() {
		var (
			inserted int
			err      error
		)

		JustBeforeEach(func() {
			inserted, err = hirebox.SeedAccounts(ctx, core.DemoAccounts("demo-pass"))
		})

		When("seeding succeeds", func() {
			BeforeEach(func() {
				fakeRepo.SeedUsersReturns(2, nil)
			})

			It("should hash every demo password and pass all accounts along", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(Equal(2))
				_, users := fakeRepo.SeedUsersArgsForCall(0)
				Expect(users).To(HaveLen(3))

				roles := make([]string, 0, len(users))
				for _, u := range users {
					roles = append(roles, u.Role)
					Expect(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("demo-pass"))).To(Succeed())
				}
				Expect(roles).To(ConsistOf(core.RoleEmployer, core.RoleJobseeker, core.RoleAdmin))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.SeedUsersReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Health", func() {
		It("should report store failures", func() {
			fakeRepo.PingReturns(fakeErr)
			Expect(hirebox.Health(ctx)).To(MatchError(fakeErr))
		})

		It("should pass when the store answers", func() {
			Expect(hirebox.Health(ctx)).To(Succeed())
		})
	})
})

package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"hirebox/internal/core"
	"hirebox/internal/http/handler/middleware"
	"hirebox/internal/http/handler/middleware/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		authMw         *middleware.AuthMiddleware
		fakeAuthorizer *fake.Authorizer
		w              *httptest.ResponseRecorder
		req            *http.Request
		nextCalled     bool
		seenPrincipal  core.Principal
	)

	BeforeEach(func() {
		fakeAuthorizer = new(fake.Authorizer)
		authMw = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeAuthorizer)
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/users", nil)
		nextCalled = false
		seenPrincipal = core.Principal{}
	})

	JustBeforeEach(func() {
		authMw.RequireRole(core.RoleAdmin, func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			seenPrincipal, _ = middleware.PrincipalFrom(r.Context())
			w.WriteHeader(http.StatusOK)
		})(w, req)
	})

	When("an admin bearer token is sent", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer admin.token")
			fakeAuthorizer.AuthorizeReturns(core.Principal{ID: 1, Role: core.RoleAdmin}, nil)
		})

		It("should call the next handler with the principal", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(nextCalled).To(BeTrue())
			Expect(seenPrincipal.ID).To(Equal(uint(1)))

			token, role := fakeAuthorizer.AuthorizeArgsForCall(0)
			Expect(token).To(Equal("admin.token"))
			Expect(role).To(Equal(core.RoleAdmin))
		})
	})

	When("the header is missing", func() {
		BeforeEach(func() {
			fakeAuthorizer.AuthorizeReturns(core.Principal{}, core.ErrInvalidToken)
		})

		It("should pass an empty token and answer 401", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"unauthorized"}`))
			Expect(nextCalled).To(BeFalse())
			token, _ := fakeAuthorizer.AuthorizeArgsForCall(0)
			Expect(token).To(BeEmpty())
		})
	})

	When("the header uses another scheme", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Basic YWxpY2U6cHc=")
			fakeAuthorizer.AuthorizeReturns(core.Principal{}, core.ErrInvalidToken)
		})

		It("should not forward the credentials as a token", func() {
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			token, _ := fakeAuthorizer.AuthorizeArgsForCall(0)
			Expect(token).To(BeEmpty())
		})
	})

	When("the token belongs to a non-admin", func() {
		BeforeEach(func() {
			req.Header.Set("Authorization", "Bearer seeker.token")
			fakeAuthorizer.AuthorizeReturns(core.Principal{ID: 2, Role: core.RoleJobseeker}, core.ErrInsufficientRole)
		})

		It("should answer 403 and never reach the handler", func() {
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"forbidden"}`))
			Expect(nextCalled).To(BeFalse())
		})
	})
})

var _ = Describe("RequestIDMiddleware", func() {
	var (
		w         *httptest.ResponseRecorder
		req       *http.Request
		requestID string
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/health", nil)
		requestID = ""
	})

	JustBeforeEach(func() {
		middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID = middleware.RequestIDFrom(r.Context())
		})).ServeHTTP(w, req)
	})

	When("the client sends no id", func() {
		It("should generate one and echo it", func() {
			Expect(requestID).NotTo(BeEmpty())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(requestID))
		})
	})

	When("the client sends an id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "abc-123")
		})

		It("should reuse it", func() {
			Expect(requestID).To(Equal("abc-123"))
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
		})
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should pass the status code through", func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/missing", nil)

		middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(http.NotFoundHandler()).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})

package payload_test

import (
	"net/http/httptest"
	"strings"

	"hirebox/internal/core"
	"hirebox/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	Describe("DecodeJSONPayload", func() {
		When("a register request is complete", func() {
			It("should decode it", func() {
				req := httptest.NewRequest("POST", "/api/register",
					strings.NewReader(`{"email":"alice@example.com","password":"pw123","role":"employer"}`))

				var reg payload.RegisterRequest
				Expect(decoder.DecodeJSONPayload(req, &reg)).To(Succeed())
				Expect(reg.ToCoreMessage()).To(Equal(core.RegisterMessage{
					Email:    "alice@example.com",
					Password: "pw123",
					Role:     "employer",
				}))
			})
		})

		When("the role is omitted", func() {
			It("should leave it empty for the service to default", func() {
				req := httptest.NewRequest("POST", "/api/register",
					strings.NewReader(`{"email":"alice@example.com","password":"pw123"}`))

				var reg payload.RegisterRequest
				Expect(decoder.DecodeJSONPayload(req, &reg)).To(Succeed())
				Expect(reg.Role).To(BeEmpty())
			})
		})

		When("the password is missing", func() {
			It("should fail validation", func() {
				req := httptest.NewRequest("POST", "/api/register",
					strings.NewReader(`{"email":"alice@example.com"}`))

				var reg payload.RegisterRequest
				err := decoder.DecodeJSONPayload(req, &reg)
				Expect(err).To(MatchError(ContainSubstring("password: cannot be blank")))
			})
		})

		When("the email is malformed", func() {
			It("should fail validation", func() {
				req := httptest.NewRequest("POST", "/api/register",
					strings.NewReader(`{"email":"not-an-email","password":"pw123"}`))

				var reg payload.RegisterRequest
				err := decoder.DecodeJSONPayload(req, &reg)
				Expect(err).To(MatchError(ContainSubstring("email")))
			})
		})

		When("login credentials are missing", func() {
			It("should fail validation", func() {
				req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{}`))

				var login payload.LoginRequest
				err := decoder.DecodeJSONPayload(req, &login)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})

		When("the body is not JSON", func() {
			It("should fail decoding", func() {
				req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`email=a`))

				var login payload.LoginRequest
				err := decoder.DecodeJSONPayload(req, &login)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the body is empty", func() {
			It("should report it", func() {
				req := httptest.NewRequest("POST", "/api/login", nil)

				var login payload.LoginRequest
				Expect(decoder.DecodeJSONPayload(req, &login)).To(MatchError(payload.ErrEmptyBody))
			})
		})
	})
})

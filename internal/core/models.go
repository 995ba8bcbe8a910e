package core

const (
	RoleEmployer  = "employer"
	RoleJobseeker = "jobseeker"
	RoleAdmin     = "admin"
)

// createdAtLayout renders timestamps in UTC with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

type RegisterMessage struct {
	Email    string
	Password string
	Role     string
}

type LoginMessage struct {
	Email    string
	Password string
}

type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Principal is the identity proven by a valid token.
type Principal struct {
	ID    uint
	Email string
	Role  string
}

type UserRecord struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SubmissionRecord struct {
	ID        uint   `json:"id"`
	Data      string `json:"data"`
	CreatedAt string `json:"createdAt"`
}

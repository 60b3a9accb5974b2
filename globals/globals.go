package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(secretFromEnv())

func secretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "next24-dev-secret"
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

// ShareDomain is the host emitted in ICS UIDs and share URLs.
const ShareDomain = "next24.xyz"

// DailyTimeBudgetMinutes is the assumed plannable time in one itinerary day.
const DailyTimeBudgetMinutes = 8 * 60

// MaxUploadBytes caps community photo submissions.
const MaxUploadBytes = 10 * 1024 * 1024

var Ctx = context.Background()

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMalformedSession = errors.New("malformed session")
	// ErrForbidden marks access to a resource owned by another user.
	ErrForbidden = errors.New("access denied")
)

type LoginSession struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// session values are stored as "<user id>|<created at unix>"
func encodeSession(userID uuid.UUID, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

func decodeSession(token, val string) (LoginSession, error) {
	idStr, createdAtStr, found := strings.Cut(val, "|")
	if !found {
		return LoginSession{}, ErrMalformedSession
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return LoginSession{}, fmt.Errorf("%w: user id: %s", ErrMalformedSession, err)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return LoginSession{}, fmt.Errorf("%w: created at: %s", ErrMalformedSession, err)
	}

	return LoginSession{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

type userIDCtxKey struct{}

func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

// UserIDFromContext returns the id of the authenticated user, set by the auth middleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(uuid.UUID)
	return userID, ok
}

// TokenFromRequest extracts the bearer token from the Authorization header.
func TokenFromRequest(r *http.Request) string {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireUserID returns the authenticated user id, answering 401 when the
// request went around the auth middleware.
func RequireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

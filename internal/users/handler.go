package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthapi/internal/auth"
	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/metrics"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

const (
	minBirthYear      = 1900
	minPasswordLength = 6
)

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type sessionManager interface {
	Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	BirthYear int    `json:"birthYear"`
	Gender    string `json:"gender"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
}

type AuthenticatedResponse struct {
	Authenticated bool      `json:"authenticated"`
	UserID        uuid.UUID `json:"userId"`
}

type AgeResponse struct {
	Age int `json:"age"`
}

type Handler struct {
	repo           usersRepo
	sessions       sessionManager
	metricsManager *metrics.Manager
	NowFunc        func() time.Time
}

func NewHandler(repo usersRepo, sessions sessionManager, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		sessions:       sessions,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (req RegisterRequest) validate(now time.Time) (scoring.Gender, error) {
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return "", errors.New("invalid email")
	}
	if strings.TrimSpace(req.Name) == "" {
		return "", errors.New("name empty")
	}
	if len(req.Password) < minPasswordLength {
		return "", errors.New("password too short")
	}
	if req.BirthYear < minBirthYear || req.BirthYear > now.Year() {
		return "", errors.New("invalid birth year")
	}
	gender, ok := scoring.ParseGender(req.Gender)
	if !ok {
		return "", errors.New("invalid gender")
	}
	return gender, nil
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	now := h.NowFunc()
	gender, err := req.validate(now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	user, err := h.repo.Add(ctx, User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: passwordHash,
		BirthYear:    req.BirthYear,
		Gender:       gender,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		log.Errorf("register user: %s", err)
		http.Error(w, "registration failed", http.StatusInternalServerError)
		return
	}

	h.metricsManager.CounterRegistrations.Inc()
	log.Debugf("new user registered: %s", user.ID)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "email and password required", http.StatusBadRequest)
		return
	}

	user, err := h.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Errorf("login, get user: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if user == nil || !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		h.metricsManager.CounterLogins.With(prometheus.Labels{"result": "failed"}).Inc()
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := h.sessions.Login(ctx, user.ID, h.NowFunc())
	if err != nil {
		log.Errorf("login, create session: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	h.metricsManager.CounterLogins.With(prometheus.Labels{"result": "ok"}).Inc()
	pkg.WriteJSON(w, LoginResponse{Token: token, UserID: user.ID}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	token := auth.TokenFromRequest(r)
	loggedOut, err := h.sessions.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		log.Debugf("logout: session already gone")
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAuthenticated(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, AuthenticatedResponse{Authenticated: true, UserID: userID}, http.StatusOK)
}

func (h *Handler) HandleAge(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.age")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("age, get user %s: %s", userID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, AgeResponse{Age: scoring.AgeFromBirthYear(user.BirthYear, h.NowFunc())}, http.StatusOK)
}

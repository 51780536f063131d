package exercises

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthapi/internal/auth"
	"github.com/2beens/healthapi/internal/calibration"
	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	Names(ctx context.Context, userID uuid.UUID) ([]string, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Exercise, error)
	Get(ctx context.Context, userID uuid.UUID, name string) (*Exercise, error)
	Rename(ctx context.Context, userID uuid.UUID, name string, req RenameRequest) (*Exercise, error)
	Delete(ctx context.Context, userID uuid.UUID, name string) error
	Progression(ctx context.Context, userID uuid.UUID, name string) (*Progression, error)
	Scores(ctx context.Context, userID uuid.UUID, name string) ([]calibration.HistoryEntry, error)
	Score(ctx context.Context, userID uuid.UUID, req ScoreRequest) (*ScoreResponse, error)
}

type Handler struct {
	service exercisesService
}

func NewHandler(service exercisesService) *Handler {
	return &Handler{
		service: service,
	}
}

func writeError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidInput):
		log.Tracef("%s: %s", action, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrForbidden):
		log.Debugf("%s: %s", action, err)
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrExerciseExists):
		http.Error(w, "exercise already exists", http.StatusConflict)
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseLogNotFound):
		http.Error(w, "exercise log not found", http.StatusNotFound)
	case errors.Is(err, scoring.ErrNoSessions):
		http.Error(w, "no sessions for exercise", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

func userAndName(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return uuid.Nil, "", false
	}
	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "exercise name empty", http.StatusBadRequest)
		return uuid.Nil, "", false
	}
	return userID, name, true
}

func (h *Handler) HandleNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.names")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	names, err := h.service.Names(ctx, userID)
	if err != nil {
		writeError(w, "exercise names", err)
		return
	}
	if names == nil {
		names = []string{}
	}

	pkg.WriteJSON(w, names, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req CreateRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("create exercise: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.Create(ctx, userID, req)
	if err != nil {
		writeError(w, "create exercise", err)
		return
	}

	pkg.WriteJSON(w, e, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	userID, name, ok := userAndName(w, r)
	if !ok {
		return
	}

	e, err := h.service.Get(ctx, userID, name)
	if err != nil {
		writeError(w, "get exercise", err)
		return
	}

	pkg.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.rename")
	defer span.End()

	userID, name, ok := userAndName(w, r)
	if !ok {
		return
	}

	var req RenameRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("rename exercise: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	e, err := h.service.Rename(ctx, userID, name, req)
	if err != nil {
		writeError(w, "rename exercise", err)
		return
	}

	pkg.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	userID, name, ok := userAndName(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, userID, name); err != nil {
		writeError(w, "delete exercise", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.progression")
	defer span.End()

	userID, name, ok := userAndName(w, r)
	if !ok {
		return
	}

	progression, err := h.service.Progression(ctx, userID, name)
	if err != nil {
		writeError(w, "exercise progression", err)
		return
	}

	pkg.WriteJSON(w, progression, http.StatusOK)
}

func (h *Handler) HandleScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.scores")
	defer span.End()

	userID, name, ok := userAndName(w, r)
	if !ok {
		return
	}

	history, err := h.service.Scores(ctx, userID, name)
	if err != nil {
		writeError(w, "exercise scores", err)
		return
	}

	pkg.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.score")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req ScoreRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("exercise score: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Score(ctx, userID, req)
	if err != nil {
		writeError(w, "exercise score", err)
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}

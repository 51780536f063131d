package training

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthapi/internal/auth"
	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type trainingService interface {
	CreateTraining(ctx context.Context, userID uuid.UUID, req CreateTrainingRequest) (*Training, error)
	UpdateTraining(ctx context.Context, userID, id uuid.UUID, req UpdateTrainingRequest) (*Training, error)
	GetTraining(ctx context.Context, userID, id uuid.UUID) (*Training, error)
	ListTrainings(ctx context.Context, userID uuid.UUID, date string) ([]Training, error)
	DeleteTraining(ctx context.Context, userID, id uuid.UUID) error
	TrainingTypes(ctx context.Context, userID uuid.UUID) ([]string, error)

	CreateExerciseLog(ctx context.Context, userID uuid.UUID, req CreateExerciseLogRequest) (*ExerciseLog, error)
	GetExerciseLog(ctx context.Context, userID, id uuid.UUID) (*ExerciseLog, error)
	UpdateExerciseLog(ctx context.Context, userID, id uuid.UUID, req UpdateExerciseLogRequest) (*ExerciseLog, error)
	DeleteExerciseLog(ctx context.Context, userID, id uuid.UUID) error

	CreateSet(ctx context.Context, userID uuid.UUID, req CreateSetRequest) (*SetLog, error)
	GetSet(ctx context.Context, userID, id uuid.UUID) (*SetLog, error)
	UpdateSet(ctx context.Context, userID, id uuid.UUID, req UpdateSetRequest) (*SetLog, error)
	DeleteSet(ctx context.Context, userID, id uuid.UUID) error
}

type Handler struct {
	service trainingService
}

func NewHandler(service trainingService) *Handler {
	return &Handler{
		service: service,
	}
}

func writeError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidInput), errors.Is(err, ErrEmptyUpdate):
		log.Tracef("%s: %s", action, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrForbidden):
		log.Debugf("%s: %s", action, err)
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrTrainingNotFound):
		http.Error(w, "training not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseLogNotFound):
		http.Error(w, "exercise log not found", http.StatusNotFound)
	case errors.Is(err, ErrSetNotFound):
		http.Error(w, "set not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

// userAndID reads the session user and the {id} path variable, writing the
// error response when either is missing.
func userAndID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, action string, v any) bool {
	if err := pkg.DecodeJSONBody(r, v); err != nil {
		log.Tracef("%s: %s", action, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) HandleCreateTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req CreateTrainingRequest
	if !decodeBody(w, r, "create training", &req) {
		return
	}

	t, err := h.service.CreateTraining(ctx, userID, req)
	if err != nil {
		writeError(w, "create training", err)
		return
	}

	pkg.WriteJSON(w, t, http.StatusCreated)
}

func (h *Handler) HandleListTrainings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	trainings, err := h.service.ListTrainings(ctx, userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, "list trainings", err)
		return
	}
	if trainings == nil {
		trainings = []Training{}
	}

	pkg.WriteJSON(w, trainings, http.StatusOK)
}

func (h *Handler) HandleTrainingTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.types")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	types, err := h.service.TrainingTypes(ctx, userID)
	if err != nil {
		writeError(w, "training types", err)
		return
	}
	if types == nil {
		types = []string{}
	}

	pkg.WriteJSON(w, types, http.StatusOK)
}

func (h *Handler) HandleGetTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.get")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	t, err := h.service.GetTraining(ctx, userID, id)
	if err != nil {
		writeError(w, "get training", err)
		return
	}

	pkg.WriteJSON(w, t, http.StatusOK)
}

func (h *Handler) HandleUpdateTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.update")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req UpdateTrainingRequest
	if !decodeBody(w, r, "update training", &req) {
		return
	}

	t, err := h.service.UpdateTraining(ctx, userID, id, req)
	if err != nil {
		writeError(w, "update training", err)
		return
	}

	pkg.WriteJSON(w, t, http.StatusOK)
}

func (h *Handler) HandleDeleteTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.delete")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTraining(ctx, userID, id); err != nil {
		writeError(w, "delete training", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleCreateExerciseLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise-log.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req CreateExerciseLogRequest
	if !decodeBody(w, r, "create exercise log", &req) {
		return
	}

	e, err := h.service.CreateExerciseLog(ctx, userID, req)
	if err != nil {
		writeError(w, "create exercise log", err)
		return
	}

	pkg.WriteJSON(w, e, http.StatusCreated)
}

func (h *Handler) HandleGetExerciseLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise-log.get")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	e, err := h.service.GetExerciseLog(ctx, userID, id)
	if err != nil {
		writeError(w, "get exercise log", err)
		return
	}

	pkg.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) HandleUpdateExerciseLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise-log.update")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req UpdateExerciseLogRequest
	if !decodeBody(w, r, "update exercise log", &req) {
		return
	}

	e, err := h.service.UpdateExerciseLog(ctx, userID, id, req)
	if err != nil {
		writeError(w, "update exercise log", err)
		return
	}

	pkg.WriteJSON(w, e, http.StatusOK)
}

func (h *Handler) HandleDeleteExerciseLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercise-log.delete")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteExerciseLog(ctx, userID, id); err != nil {
		writeError(w, "delete exercise log", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleCreateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.set.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req CreateSetRequest
	if !decodeBody(w, r, "create set", &req) {
		return
	}

	s, err := h.service.CreateSet(ctx, userID, req)
	if err != nil {
		writeError(w, "create set", err)
		return
	}

	pkg.WriteJSON(w, s, http.StatusCreated)
}

func (h *Handler) HandleGetSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.set.get")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	s, err := h.service.GetSet(ctx, userID, id)
	if err != nil {
		writeError(w, "get set", err)
		return
	}

	pkg.WriteJSON(w, s, http.StatusOK)
}

func (h *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.set.update")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req UpdateSetRequest
	if !decodeBody(w, r, "update set", &req) {
		return
	}

	s, err := h.service.UpdateSet(ctx, userID, id, req)
	if err != nil {
		writeError(w, "update set", err)
		return
	}

	pkg.WriteJSON(w, s, http.StatusOK)
}

func (h *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.set.delete")
	defer span.End()

	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSet(ctx, userID, id); err != nil {
		writeError(w, "delete set", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

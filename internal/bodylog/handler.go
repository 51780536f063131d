package bodylog

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodylog_test

type bodyLogService interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*BodyLog, error)
	Update(ctx context.Context, userID, id uuid.UUID, req UpdateRequest) (*BodyLog, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*BodyLog, error)
	List(ctx context.Context, userID uuid.UUID) ([]BodyLog, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CaloriesOnDay(ctx context.Context, userID uuid.UUID, date string) (*CaloriesOnDay, error)
}

type Handler struct {
	service bodyLogService
}

func NewHandler(service bodyLogService) *Handler {
	return &Handler{
		service: service,
	}
}

func writeError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidInput), errors.Is(err, ErrEmptyUpdate):
		log.Tracef("%s: %s", action, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBodyLogNotFound):
		http.Error(w, "body log not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, action+" failed", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodylog.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req CreateRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("create body log: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.service.Create(ctx, userID, req)
	if err != nil {
		writeError(w, "create body log", err)
		return
	}

	pkg.WriteJSON(w, b, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodylog.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	logs, err := h.service.List(ctx, userID)
	if err != nil {
		writeError(w, "list body logs", err)
		return
	}
	if logs == nil {
		logs = []BodyLog{}
	}

	pkg.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodylog.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.service.Get(ctx, userID, id)
	if err != nil {
		writeError(w, "get body log", err)
		return
	}

	pkg.WriteJSON(w, b, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodylog.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		log.Tracef("update body log: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.service.Update(ctx, userID, id, req)
	if err != nil {
		writeError(w, "update body log", err)
		return
	}

	pkg.WriteJSON(w, b, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodylog.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		writeError(w, "delete body log", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleCaloriesOnDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodylog.calories")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	calories, err := h.service.CaloriesOnDay(ctx, userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, "calories on day", err)
		return
	}

	pkg.WriteJSON(w, calories, http.StatusOK)
}

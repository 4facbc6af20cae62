// AngelaMos | 2026
// handler.go

package todo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/todoapp/internal/core"
	"github.com/angelamos/todoapp/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/todos", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{todoID}", h.Get)
		r.Put("/{todoID}", h.Update)
		r.Delete("/{todoID}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	todos, err := h.service.List(r.Context(), identity)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTodoResponseList(todos))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	todoID, ok := parseTodoID(r)
	if !ok {
		core.NotFound(w, "todo")
		return
	}

	todo, err := h.service.Get(r.Context(), identity, todoID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "todo")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToTodoResponse(todo))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	todo, err := h.service.Create(r.Context(), identity, req)
	if err != nil {
		// storage-layer detail is deliberately surfaced at this boundary
		core.BadRequest(w, err.Error())
		return
	}

	core.Created(w, ToTodoResponse(todo))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	todoID, ok := parseTodoID(r)
	if !ok {
		core.NotFound(w, "todo")
		return
	}

	var req TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	todo, err := h.service.Update(r.Context(), identity, todoID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "todo")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToTodoResponse(todo))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		core.Unauthorized(w, "")
		return
	}

	todoID, ok := parseTodoID(r)
	if !ok {
		core.NotFound(w, "todo")
		return
	}

	if err := h.service.Delete(r.Context(), identity, todoID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "todo")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, nil)
}

func parseTodoID(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "todoID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

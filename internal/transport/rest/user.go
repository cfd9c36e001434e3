package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripnarrator/internal/domain"
	"github.com/heartmarshall/tripnarrator/internal/service/user"
)

type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	ListUsers(ctx context.Context, input user.ListUsersInput) ([]domain.User, int, error)
	UpdateRole(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (*domain.User, error)
	SetActive(ctx context.Context, targetUserID uuid.UUID, active bool) (*domain.User, error)
}

// UserHandler serves profile and user administration endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user analyst admin"`
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Me handles GET /me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// List handles GET /admin/users?role=&active=&limit=&offset=.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	in, err := parseUserList(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	users, total, err := h.svc.ListUsers(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]userResponse, len(users))
	for i := range users {
		items[i] = toUserResponse(&users[i])
	}
	limit := in.Limit
	if limit == 0 {
		limit = user.DefaultListLimit
	}
	writeJSON(w, http.StatusOK, listResponse[userResponse]{Items: items, Total: total, Limit: limit, Offset: in.Offset})
}

// UpdateRole handles PUT /admin/users/{id}/role.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateRoleRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateRole(r.Context(), id, domain.Role(req.Role))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetActive handles PUT /admin/users/{id}/active.
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req setActiveRequest
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.SetActive(r.Context(), id, *req.IsActive)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func parseUserList(r *http.Request) (user.ListUsersInput, error) {
	var in user.ListUsersInput
	var err error

	if role := r.URL.Query().Get("role"); role != "" {
		in.Role = &role
	}
	if in.IsActive, err = queryBool(r, "active"); err != nil {
		return in, err
	}
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		return in, err
	}
	if in.Offset, err = queryInt(r, "offset"); err != nil {
		return in, err
	}
	return in, nil
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RostrApp/rostr-backend-go/internal/domain/user"
	"github.com/RostrApp/rostr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// List implements UserHandler. An optional role query parameter narrows
// the listing to admins or staff.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")

	users, err := h.userService.ListUsers(r.Context(), role)
	if err != nil {
		slog.Error("List users service error", "error", err, "role", role)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// GetByID implements UserHandler.
func (h *UserHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	found, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var updateReq user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.UpdateUser(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err, "user_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("User updated", "user_id", id)
	response.SuccessWithMessage(w, "User updated successfully", updated)
}

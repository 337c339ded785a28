package user

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appuser "userservice/internal/app/user"
	"userservice/internal/http/binding"
	"userservice/internal/http/responses"
	"userservice/internal/logging"
)

type Handler struct {
	service appuser.Service
	logger  logging.Logger
}

func NewHandler(service appuser.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "user_http_handler"),
	}
}

// List GET /users
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}		apidocs.UserResponse
//	@Failure	500	{object}	apidocs.ErrorEnvelope
//	@Router		/users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		responses.WriteStoreFailure(w, err)
		return
	}

	responses.WriteJSON(w, http.StatusOK, users)
}

// Create POST /users
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		apidocs.UserRequest	true	"New user"
//	@Success	201		{object}	apidocs.CreatedResponse
//	@Failure	400		{object}	apidocs.ErrorEnvelope
//	@Failure	500		{object}	apidocs.ErrorEnvelope
//	@Router		/users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.bind(w, r)
	if !ok {
		return
	}

	dto, err := h.service.Create(r.Context(), appuser.CreateUserInput{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		responses.WriteStoreFailure(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/users/%d", dto.Id))
	responses.WriteJSON(w, http.StatusCreated, CreatedResponse{
		Message: msgUserCreated,
		ID:      dto.Id,
	})
}

// GetByID GET /users/{id}
//
//	@Summary	Get a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	apidocs.UserResponse
//	@Failure	404	{object}	apidocs.ErrorEnvelope
//	@Failure	500	{object}	apidocs.ErrorEnvelope
//	@Router		/users/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	dto, err := h.service.GetById(r.Context(), id)
	if err != nil {
		if appuser.IsNotFound(err) {
			responses.WriteError(w, http.StatusNotFound, responses.CategoryNotFound, msgUserNotFound)
			return
		}
		responses.WriteStoreFailure(w, err)
		return
	}

	responses.WriteJSON(w, http.StatusOK, dto)
}

// Update PUT /users/{id}
//
// Succeeds even when no user has the given id.
//
//	@Summary	Replace a user's name and email
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"User ID"
//	@Param		user	body		apidocs.UserRequest	true	"New values"
//	@Success	200		{object}	apidocs.MessageResponse
//	@Failure	400		{object}	apidocs.ErrorEnvelope
//	@Failure	500		{object}	apidocs.ErrorEnvelope
//	@Router		/users/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	input, ok := h.bind(w, r)
	if !ok {
		return
	}

	err := h.service.Update(r.Context(), appuser.UpdateUserInput{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		responses.WriteStoreFailure(w, err)
		return
	}

	responses.WriteMessage(w, http.StatusOK, msgUserUpdated)
}

// Delete DELETE /users/{id}
//
// Succeeds even when no user has the given id.
//
//	@Summary	Delete a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	apidocs.MessageResponse
//	@Failure	500	{object}	apidocs.ErrorEnvelope
//	@Router		/users/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		responses.WriteStoreFailure(w, err)
		return
	}

	responses.WriteMessage(w, http.StatusOK, msgUserDeleted)
}

// bind decodes and validates the user payload, answering 400 on failure.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request) (UserRequest, bool) {
	var input UserRequest
	err := binding.BindAndValidate(r, &input)
	switch {
	case err == nil:
		return input, true
	case errors.Is(err, binding.ErrTooLarge):
		responses.WriteInvalidInput(w, r)
	case errors.Is(err, binding.ErrInvalidFields):
		h.logger.Debug("invalid user payload", "error", err)
		responses.WriteBadRequest(w, msgMissingFields)
	default:
		responses.WriteBadRequest(w, msgNoData)
	}
	return UserRequest{}, false
}

// userID reads the {id} route param. The route pattern only admits digits,
// so a failure here is an out-of-range value and is answered as not found.
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		responses.WriteNotFound(w, r)
		return 0, false
	}
	return id, true
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/loopcrm/crm-backend/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type salesRepResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Me returns the authenticated user's profile.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Me(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// SalesReps lists users with the sales role, for assignment dropdowns.
//
// @Summary      List sales representatives
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   salesRepResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/users/sales-reps [get]
func (h *UserHandler) SalesReps(c echo.Context) error {
	reps, err := h.userService.SalesReps(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]salesRepResponse, len(reps))
	for i, r := range reps {
		out[i] = salesRepResponse{ID: r.ID, Name: r.Name, Email: r.Email}
	}
	return c.JSON(http.StatusOK, out)
}

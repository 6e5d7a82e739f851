package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// UserHandler handles HTTP requests for the user registry.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/exercise/new-user.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      newUserRequest  true  "Username to register"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/exercise/new-user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req newUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List handles GET /api/exercise/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/exercise/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(&u)
	}
	return c.JSON(http.StatusOK, resp)
}

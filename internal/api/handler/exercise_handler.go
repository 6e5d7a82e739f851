package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// ExerciseHandler handles HTTP requests for the exercise log.
type ExerciseHandler struct {
	service ports.ExerciseService
}

func NewExerciseHandler(service ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// Add handles POST /api/exercise/add.
//
// @Summary      Log an exercise for a user
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        body  body      addExerciseRequest  true  "Exercise to log; date defaults to today"
// @Success      200   {object}  addExerciseResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/exercise/add [post]
func (h *ExerciseHandler) Add(c echo.Context) error {
	var req addExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	input, err := toAddExerciseInput(req)
	if err != nil {
		return err
	}

	result, err := h.service.AddExercise(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAddExerciseResponse(result))
}

// Log handles GET /api/exercise/log.
//
// @Summary      Query a user's exercise log
// @Tags         exercises
// @Produce      json
// @Param        userId  query     string  true   "User id (24 hex chars)"
// @Param        from    query     string  false  "Inclusive lower date bound (YYYY-MM-DD)"
// @Param        to      query     string  false  "Inclusive upper date bound (YYYY-MM-DD)"
// @Param        limit   query     int     false  "Maximum number of entries returned"
// @Success      200     {object}  logResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/exercise/log [get]
func (h *ExerciseHandler) Log(c echo.Context) error {
	var req logQueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	input, err := toLogQueryInput(req)
	if err != nil {
		return err
	}

	result, err := h.service.QueryLog(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toLogResponse(result))
}

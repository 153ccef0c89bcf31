package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

// DifficultyHandler handles HTTP requests for walk difficulty operations.
type DifficultyHandler struct {
	service ports.DifficultyService
}

func NewDifficultyHandler(service ports.DifficultyService) *DifficultyHandler {
	return &DifficultyHandler{service: service}
}

type difficultyRequest struct {
	Code string `json:"code" validate:"required"`
}

type difficultyResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

func toDifficultyResponse(d *domain.WalkDifficulty) difficultyResponse {
	return difficultyResponse{ID: d.ID, Code: d.Code}
}

// List handles GET /v1/difficulties.
//
// @Summary      List all walk difficulties
// @Tags         difficulties
// @Produce      json
// @Success      200  {array}  difficultyResponse
// @Router       /v1/difficulties [get]
func (h *DifficultyHandler) List(c echo.Context) error {
	difficulties, err := h.service.ListDifficulties(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]difficultyResponse, len(difficulties))
	for i, d := range difficulties {
		out[i] = toDifficultyResponse(d)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/difficulties/:id.
//
// @Summary      Get a walk difficulty by id
// @Tags         difficulties
// @Produce      json
// @Param        id   path      string  true  "Difficulty id"
// @Success      200  {object}  difficultyResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/difficulties/{id} [get]
func (h *DifficultyHandler) Get(c echo.Context) error {
	difficulty, err := h.service.GetDifficulty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDifficultyResponse(difficulty))
}

// Create handles POST /v1/difficulties.
//
// @Summary      Create a walk difficulty
// @Tags         difficulties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      difficultyRequest  true  "Difficulty details"
// @Success      201   {object}  difficultyResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/difficulties [post]
func (h *DifficultyHandler) Create(c echo.Context) error {
	var req difficultyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	difficulty, err := h.service.CreateDifficulty(c.Request().Context(), ports.DifficultyInput{Code: req.Code, Actor: actor(c)})
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/v1/difficulties/"+difficulty.ID)
	return c.JSON(http.StatusCreated, toDifficultyResponse(difficulty))
}

// Update handles PUT /v1/difficulties/:id.
//
// @Summary      Update a walk difficulty
// @Tags         difficulties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Difficulty id"
// @Param        body  body      difficultyRequest  true  "Difficulty details"
// @Success      200   {object}  difficultyResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/difficulties/{id} [put]
func (h *DifficultyHandler) Update(c echo.Context) error {
	var req difficultyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	difficulty, err := h.service.UpdateDifficulty(c.Request().Context(), c.Param("id"), ports.DifficultyInput{Code: req.Code, Actor: actor(c)})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDifficultyResponse(difficulty))
}

// Delete handles DELETE /v1/difficulties/:id.
//
// @Summary      Delete a walk difficulty
// @Tags         difficulties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Difficulty id"
// @Success      200  {object}  difficultyResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/difficulties/{id} [delete]
func (h *DifficultyHandler) Delete(c echo.Context) error {
	difficulty, err := h.service.DeleteDifficulty(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDifficultyResponse(difficulty))
}

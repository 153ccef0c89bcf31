package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nzwalks/walks-api/internal/core/ports"
)

// WalkHandler handles HTTP requests for walk operations.
type WalkHandler struct {
	service ports.WalkService
}

func NewWalkHandler(service ports.WalkService) *WalkHandler {
	return &WalkHandler{service: service}
}

// List handles GET /v1/walks.
//
// @Summary      List all walks
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  walkResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/walks [get]
func (h *WalkHandler) List(c echo.Context) error {
	details, err := h.service.ListWalks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWalkListResponse(details))
}

// Get handles GET /v1/walks/:id.
//
// @Summary      Get a walk by id
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Walk id"
// @Success      200  {object}  walkResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/walks/{id} [get]
func (h *WalkHandler) Get(c echo.Context) error {
	detail, err := h.service.GetWalk(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWalkResponse(detail))
}

// Create handles POST /v1/walks.
//
// @Summary      Create a walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      walkRequest  true  "Walk details"
// @Success      201   {object}  walkResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/walks [post]
func (h *WalkHandler) Create(c echo.Context) error {
	var req walkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.CreateWalk(c.Request().Context(), toWalkInput(req, actor(c)))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/v1/walks/"+detail.Walk.ID)
	return c.JSON(http.StatusCreated, toWalkResponse(detail))
}

// Update handles PUT /v1/walks/:id.
//
// @Summary      Update a walk
// @Tags         walks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Walk id"
// @Param        body  body      walkRequest  true  "Walk details"
// @Success      200   {object}  walkResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/walks/{id} [put]
func (h *WalkHandler) Update(c echo.Context) error {
	var req walkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.UpdateWalk(c.Request().Context(), c.Param("id"), toWalkInput(req, actor(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWalkResponse(detail))
}

// Delete handles DELETE /v1/walks/:id. The deleted record is returned
// without its references expanded.
//
// @Summary      Delete a walk
// @Tags         walks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Walk id"
// @Success      200  {object}  walkResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/walks/{id} [delete]
func (h *WalkHandler) Delete(c echo.Context) error {
	walk, err := h.service.DeleteWalk(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWalkResponse(&ports.WalkDetail{Walk: *walk}))
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nzwalks/walks-api/internal/core/ports"
)

// RegionHandler handles HTTP requests for region operations.
type RegionHandler struct {
	service ports.RegionService
}

func NewRegionHandler(service ports.RegionService) *RegionHandler {
	return &RegionHandler{service: service}
}

// List handles GET /v1/regions.
//
// @Summary      List all regions
// @Tags         regions
// @Produce      json
// @Success      200  {array}  regionResponse
// @Router       /v1/regions [get]
func (h *RegionHandler) List(c echo.Context) error {
	regions, err := h.service.ListRegions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRegionListResponse(regions))
}

// Get handles GET /v1/regions/:id.
//
// @Summary      Get a region by id
// @Tags         regions
// @Produce      json
// @Param        id   path      string  true  "Region id"
// @Success      200  {object}  regionResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/regions/{id} [get]
func (h *RegionHandler) Get(c echo.Context) error {
	region, err := h.service.GetRegion(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRegionResponse(region))
}

// Create handles POST /v1/regions.
//
// @Summary      Create a region
// @Tags         regions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      regionRequest  true  "Region details"
// @Success      201   {object}  regionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/regions [post]
func (h *RegionHandler) Create(c echo.Context) error {
	var req regionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	region, err := h.service.CreateRegion(c.Request().Context(), toRegionInput(req, actor(c)))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/v1/regions/"+region.ID)
	return c.JSON(http.StatusCreated, toRegionResponse(region))
}

// Update handles PUT /v1/regions/:id.
//
// @Summary      Update a region
// @Tags         regions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Region id"
// @Param        body  body      regionRequest  true  "Region details"
// @Success      200   {object}  regionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/regions/{id} [put]
func (h *RegionHandler) Update(c echo.Context) error {
	var req regionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	region, err := h.service.UpdateRegion(c.Request().Context(), c.Param("id"), toRegionInput(req, actor(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRegionResponse(region))
}

// Delete handles DELETE /v1/regions/:id. The deleted record is returned in
// the response body.
//
// @Summary      Delete a region
// @Tags         regions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Region id"
// @Success      200  {object}  regionResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/regions/{id} [delete]
func (h *RegionHandler) Delete(c echo.Context) error {
	region, err := h.service.DeleteRegion(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRegionResponse(region))
}

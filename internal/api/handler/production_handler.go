package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/theater-demo/theater-api/internal/core/ports"
)

// ProductionHandler handles HTTP requests for the production catalog.
type ProductionHandler struct {
	service ports.ProductionService
}

func NewProductionHandler(service ports.ProductionService) *ProductionHandler {
	return &ProductionHandler{service: service}
}

// List handles GET /productions.
//
// @Summary      List productions
// @Tags         productions
// @Produce      json
// @Param        genre  query     string  false  "Only productions of this genre"
// @Success      200    {array}   productionResponse
// @Failure      500    {object}  errorResponse
// @Router       /productions [get]
func (h *ProductionHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context(), ports.ListProductionsInput{Genre: c.QueryParam("genre")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductionResponses(list))
}

// Get handles GET /productions/:id.
//
// @Summary      Get a production with its cast
// @Tags         productions
// @Produce      json
// @Param        id   path      string  true  "Production id"
// @Success      200  {object}  productionDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /productions/{id} [get]
func (h *ProductionHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductionDetailResponse(detail))
}

// GetByTitle handles GET /productions/title/:title.
//
// @Summary      Get a production by its exact title
// @Tags         productions
// @Produce      json
// @Param        title  path      string  true  "Production title"
// @Success      200    {object}  productionDetailResponse
// @Failure      404    {object}  errorResponse
// @Router       /productions/title/{title} [get]
func (h *ProductionHandler) GetByTitle(c echo.Context) error {
	detail, err := h.service.GetByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductionDetailResponse(detail))
}

// Longest handles GET /longest-movies.
//
// @Summary      Longest productions first
// @Tags         productions
// @Produce      json
// @Param        limit  query     int  false  "How many to return (default 5, max 50)"
// @Success      200    {array}   productionResponse
// @Failure      400    {object}  errorResponse
// @Router       /longest-movies [get]
func (h *ProductionHandler) Longest(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	list, err := h.service.Longest(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductionResponses(list))
}

// Create handles POST /productions.
//
// @Summary      Create a production
// @Tags         productions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductionRequest  true  "Production"
// @Success      201   {object}  productionResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /productions [post]
func (h *ProductionHandler) Create(c echo.Context) error {
	var req createProductionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), toCreateProductionInput(req, requestedBy(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductionResponse(p))
}

// Update handles PATCH /productions/:id.
//
// @Summary      Partially update a production
// @Tags         productions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Production id"
// @Param        body  body      updateProductionRequest  true  "Fields to change"
// @Success      200   {object}  productionResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /productions/{id} [patch]
func (h *ProductionHandler) Update(c echo.Context) error {
	var req updateProductionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), toUpdateProductionInput(c.Param("id"), req, requestedBy(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductionResponse(p))
}

// Delete handles DELETE /productions/:id. Roles in the production go with it.
//
// @Summary      Delete a production
// @Tags         productions
// @Security     BearerAuth
// @Param        id  path  string  true  "Production id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /productions/{id} [delete]
func (h *ProductionHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), ports.DeleteInput{ID: c.Param("id"), RequestedBy: requestedBy(c)})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

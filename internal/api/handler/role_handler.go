package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/theater-demo/theater-api/internal/core/ports"
)

type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// Get handles GET /roles/:id.
//
// @Summary      Get a role with its production and actor
// @Tags         roles
// @Produce      json
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Router       /roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(detail))
}

// Create handles POST /roles.
//
// @Summary      Cast an actor in a production
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role"
// @Success      201   {object}  roleResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	detail, err := h.service.Create(c.Request().Context(), ports.CreateRoleInput{
		RoleName:     req.RoleName,
		ProductionID: req.ProductionID,
		ActorID:      req.ActorID,
		RequestedBy:  requestedBy(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRoleResponse(detail))
}

// Delete handles DELETE /roles/:id.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     BearerAuth
// @Param        id  path  string  true  "Role id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), ports.DeleteInput{ID: c.Param("id"), RequestedBy: requestedBy(c)})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/theater-demo/theater-api/internal/core/ports"
)

type ActorHandler struct {
	service ports.ActorService
}

func NewActorHandler(service ports.ActorService) *ActorHandler {
	return &ActorHandler{service: service}
}

// List handles GET /actors.
//
// @Summary      List actors
// @Tags         actors
// @Produce      json
// @Success      200  {array}  actorResponse
// @Router       /actors [get]
func (h *ActorHandler) List(c echo.Context) error {
	actors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActorResponses(actors))
}

// Get handles GET /actors/:id.
//
// @Summary      Get an actor with their credits
// @Tags         actors
// @Produce      json
// @Param        id   path      string  true  "Actor id"
// @Success      200  {object}  actorDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /actors/{id} [get]
func (h *ActorHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActorDetailResponse(detail))
}

// Create handles POST /actors.
//
// @Summary      Create an actor
// @Tags         actors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActorRequest  true  "Actor"
// @Success      201   {object}  actorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /actors [post]
func (h *ActorHandler) Create(c echo.Context) error {
	var req createActorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.service.Create(c.Request().Context(), toCreateActorInput(req, requestedBy(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toActorResponse(a))
}

// Update handles PATCH /actors/:id.
//
// @Summary      Partially update an actor
// @Tags         actors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Actor id"
// @Param        body  body      updateActorRequest  true  "Fields to change"
// @Success      200   {object}  actorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /actors/{id} [patch]
func (h *ActorHandler) Update(c echo.Context) error {
	var req updateActorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	a, err := h.service.Update(c.Request().Context(), toUpdateActorInput(c.Param("id"), req, requestedBy(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toActorResponse(a))
}

// Delete handles DELETE /actors/:id.
//
// @Summary      Delete an actor and their roles
// @Tags         actors
// @Security     BearerAuth
// @Param        id  path  string  true  "Actor id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /actors/{id} [delete]
func (h *ActorHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(), ports.DeleteInput{ID: c.Param("id"), RequestedBy: requestedBy(c)})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

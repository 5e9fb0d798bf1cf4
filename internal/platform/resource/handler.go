package resource

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/apperr"
)

// Handler exposes the five standard routes for one collection. Errors are
// returned as-is and rendered by the central HTTP error handler.
type Handler[T Entity] struct {
	// Service runs the CRUD operations.
	Service *Service[T]
	// Prefix is the collection's route prefix, e.g. "/api/Patients".
	Prefix string
	// New allocates an empty entity for request binding.
	New func() T
	// Present shapes one entity into its response form, loading whatever
	// related summaries the shape needs.
	Present func(ctx context.Context, ent T) (interface{}, error)
}

// Register mounts the collection's routes on e.
func (h *Handler[T]) Register(e *echo.Echo) {
	g := e.Group(h.Prefix)
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler[T]) list(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.Service.List(ctx)
	if err != nil {
		return err
	}
	out := make([]interface{}, 0, len(items))
	for _, ent := range items {
		body, err := h.Present(ctx, ent)
		if err != nil {
			return err
		}
		out = append(out, body)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler[T]) get(c echo.Context) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	ent, err := h.Service.Get(ctx, id)
	if err != nil {
		return err
	}
	body, err := h.Present(ctx, ent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}

func (h *Handler[T]) create(c echo.Context) error {
	ent := h.New()
	if err := c.Bind(ent); err != nil {
		return apperr.Validationf("invalid request body")
	}
	ctx := c.Request().Context()
	if err := h.Service.Create(ctx, ent); err != nil {
		return err
	}
	body, err := h.Present(ctx, ent)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, h.Prefix+"/"+ent.EntityID().String())
	return c.JSON(http.StatusCreated, body)
}

func (h *Handler[T]) update(c echo.Context) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	ent := h.New()
	if err := c.Bind(ent); err != nil {
		return apperr.Validationf("invalid request body")
	}
	ctx := c.Request().Context()
	if err := h.Service.Update(ctx, id, ent); err != nil {
		return err
	}
	body, err := h.Present(ctx, ent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, body)
}

func (h *Handler[T]) delete(c echo.Context) error {
	id, err := h.paramID(c)
	if err != nil {
		return err
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler[T]) paramID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.Validationf("invalid %s id %q", h.Service.Descriptor().Singular, c.Param("id"))
	}
	return id, nil
}

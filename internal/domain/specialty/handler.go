package specialty

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the specialty collection under /api/Specialties.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Specialty]{
		Service: svc.Service,
		Prefix:  "/api/Specialties",
		New:     func() *Specialty { return &Specialty{} },
		Present: func(ctx context.Context, sp *Specialty) (interface{}, error) {
			return svc.Present(ctx, sp)
		},
	}
	h.Register(e)
}

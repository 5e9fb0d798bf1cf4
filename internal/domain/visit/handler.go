package visit

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the visit collection under /api/Visits.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Visit]{
		Service: svc.Service,
		Prefix:  "/api/Visits",
		New:     func() *Visit { return &Visit{} },
		Present: func(ctx context.Context, v *Visit) (interface{}, error) {
			return svc.Present(ctx, v)
		},
	}
	h.Register(e)
}

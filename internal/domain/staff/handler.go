package staff

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the staff collection under /api/Staff.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Staff]{
		Service: svc.Service,
		Prefix:  "/api/Staff",
		New:     func() *Staff { return &Staff{} },
		Present: func(ctx context.Context, st *Staff) (interface{}, error) {
			return svc.Present(ctx, st)
		},
	}
	h.Register(e)
}

package admission

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the admission collection under /api/Admissions.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Admission]{
		Service: svc.Service,
		Prefix:  "/api/Admissions",
		New:     func() *Admission { return &Admission{} },
		Present: func(ctx context.Context, a *Admission) (interface{}, error) {
			return svc.Present(ctx, a)
		},
	}
	h.Register(e)
}

package discharge

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the discharge collection under /api/Discharges. The
// :id parameter is the admission id the discharge belongs to.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Discharge]{
		Service: svc.Service,
		Prefix:  "/api/Discharges",
		New:     func() *Discharge { return &Discharge{} },
		Present: func(ctx context.Context, d *Discharge) (interface{}, error) {
			return svc.Present(ctx, d)
		},
	}
	h.Register(e)
}

package prescription

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the prescription collection under /api/Prescriptions.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Prescription]{
		Service: svc.Service,
		Prefix:  "/api/Prescriptions",
		New:     func() *Prescription { return &Prescription{} },
		Present: func(ctx context.Context, p *Prescription) (interface{}, error) {
			return svc.Present(ctx, p)
		},
	}
	h.Register(e)
}

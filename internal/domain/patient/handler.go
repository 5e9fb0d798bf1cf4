package patient

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the patient collection under /api/Patients.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Patient]{
		Service: svc.Service,
		Prefix:  "/api/Patients",
		New:     func() *Patient { return &Patient{} },
		Present: func(ctx context.Context, p *Patient) (interface{}, error) {
			return svc.Present(ctx, p)
		},
	}
	h.Register(e)
}

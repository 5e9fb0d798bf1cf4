package exam

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the exam collection under /api/Exams.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Exam]{
		Service: svc.Service,
		Prefix:  "/api/Exams",
		New:     func() *Exam { return &Exam{} },
		Present: func(ctx context.Context, x *Exam) (interface{}, error) {
			return svc.Present(ctx, x)
		},
	}
	h.Register(e)
}

package record

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/hospisim/hospisim/internal/platform/resource"
)

// RegisterRoutes mounts the record collection under /api/Records.
func RegisterRoutes(e *echo.Echo, svc *Service) {
	h := &resource.Handler[*Record]{
		Service: svc.Service,
		Prefix:  "/api/Records",
		New:     func() *Record { return &Record{} },
		Present: func(ctx context.Context, r *Record) (interface{}, error) {
			return svc.Present(ctx, r)
		},
	}
	h.Register(e)
}

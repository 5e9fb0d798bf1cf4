package patient

import (
	"github.com/hospisim/hospisim/internal/platform/resource"
)

type Repository interface {
	resource.Repo[*Patient]
}

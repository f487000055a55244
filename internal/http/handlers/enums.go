package handlers

import (
	"net/http"

	"github.com/teron131/Visual-Prompting/internal/domain"
)

type enumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type labeled interface {
	~string
	Label() string
}

func options[T labeled](values []T) []enumOption {
	out := make([]enumOption, 0, len(values))
	for _, v := range values {
		out = append(out, enumOption{Value: string(v), Label: v.Label()})
	}
	return out
}

// Enums handles GET /api/enums and lists every selectable parameter value
// with its display label, for UI pickers.
func (a *App) Enums(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string][]enumOption{
		"aspect_ratios":     options(domain.AspectRatios()),
		"shot_types":        options(domain.ShotTypes()),
		"camera_movements":  options(domain.CameraMovements()),
		"photography_types": options(domain.PhotographyTypes()),
		"lens_types":        options(domain.LensTypes()),
		"lighting_types":    options(domain.LightingTypes()),
	})
}

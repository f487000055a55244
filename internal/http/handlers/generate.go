package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/teron131/Visual-Prompting/internal/domain"
	"github.com/teron131/Visual-Prompting/internal/providers/openrouter"
)

const maxOutputs = 4

type generateRequest struct {
	Mode       string                     `json:"mode"`
	TextInput  string                     `json:"text_input"`
	NumOutputs int                        `json:"num_outputs"`
	Params     domain.ParameterSelections `json:"params"`
}

type generateResponse struct {
	Status     string   `json:"status"`
	Mode       string   `json:"mode"`
	NumOutputs int      `json:"num_outputs"`
	Prompts    []string `json:"prompts"`
}

// Generate handles POST /api/generate: a JSON body with free text, mode,
// batch size and optional enum selections.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON payload")
		return
	}
	a.generate(w, r, req, nil)
}

// GenerateWithImage handles POST /api/generate-with-image: a multipart form
// carrying the same fields plus an optional reference image. The upload is
// spooled to disk for the duration of the request and removed afterwards.
func (a *App) GenerateWithImage(w http.ResponseWriter, r *http.Request) {
	if !a.Config.EnableImageUpload {
		a.error(w, http.StatusBadRequest, "uploads_disabled", "image upload is disabled")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.Config.MaxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart form")
		return
	}

	req := generateRequest{
		Mode:      r.FormValue("mode"),
		TextInput: r.FormValue("text_input"),
		Params: domain.ParameterSelections{
			AspectRatio:     domain.AspectRatio(r.FormValue("aspect_ratio")),
			ShotType:        domain.ShotType(r.FormValue("shot_type")),
			CameraMovement:  domain.CameraMovement(r.FormValue("camera_movement")),
			PhotographyType: domain.PhotographyType(r.FormValue("photography_type")),
			LensType:        domain.LensType(r.FormValue("lens_type")),
			LightingType:    domain.LightingType(r.FormValue("lighting_type")),
		},
	}
	if raw := strings.TrimSpace(r.FormValue("num_outputs")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "num_outputs must be an integer")
			return
		}
		req.NumOutputs = n
	}

	image, err := a.spoolUpload(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.generate(w, r, req, image)
}

func (a *App) generate(w http.ResponseWriter, r *http.Request, req generateRequest, image []byte) {
	mode := domain.Mode(strings.TrimSpace(req.Mode))
	if !mode.Valid() {
		a.error(w, http.StatusBadRequest, "invalid_mode", `mode must be "image" or "video"`)
		return
	}
	if req.NumOutputs == 0 {
		req.NumOutputs = 1
	}
	if req.NumOutputs < 1 || req.NumOutputs > maxOutputs {
		a.error(w, http.StatusBadRequest, "invalid_num_outputs",
			fmt.Sprintf("num_outputs must be between 1 and %d", maxOutputs))
		return
	}
	text := strings.TrimSpace(req.TextInput)
	if text == "" && len(image) == 0 {
		a.error(w, http.StatusBadRequest, "empty_input", "text_input or a reference image is required")
		return
	}
	if err := req.Params.Validate(mode); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_params", err.Error())
		return
	}

	prompts, err := a.Generator.Generate(r.Context(), openrouter.GenerateRequest{
		Mode:     mode,
		UserText: text,
		Image:    image,
		Count:    req.NumOutputs,
		Params:   req.Params,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProviderFailure) {
			a.Log.Error().Err(err).Str("mode", string(mode)).Msg("prompt generation failed")
			a.error(w, http.StatusBadGateway, "provider_failure", "prompt generation failed upstream")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	a.json(w, http.StatusOK, generateResponse{
		Status:     "success",
		Mode:       string(mode),
		NumOutputs: len(prompts),
		Prompts:    prompts,
	})
}

// spoolUpload stores the optional image part on disk, reads it back and
// removes the file before returning. A missing part is not an error.
func (a *App) spoolUpload(r *http.Request) ([]byte, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.New("invalid image part")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", header.Filename, err)
	}
	if len(data) == 0 {
		return nil, errors.New("image part is empty")
	}

	key := uuid.NewString()
	if _, err := a.Uploads.Write(r.Context(), key, data); err != nil {
		return nil, fmt.Errorf("spool image: %w", err)
	}
	defer func() {
		if err := a.Uploads.Remove(key); err != nil {
			a.Log.Warn().Err(err).Str("key", key).Msg("remove spooled upload")
		}
	}()
	return a.Uploads.Read(r.Context(), key)
}

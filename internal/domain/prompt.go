package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Quality levels for image generation.
const (
	QualityStandard = "standard"
	QualityHigh     = "high"
	QualityUltra    = "ultra"
	QualityArtistic = "artistic"
)

// Duration preferences for video generation.
const (
	DurationShort  = "short"
	DurationMedium = "medium"
	DurationLong   = "long"
)

// Motion intensity levels for video generation.
const (
	MotionSubtle   = "subtle"
	MotionModerate = "moderate"
	MotionDynamic  = "dynamic"
	MotionIntense  = "intense"
)

var imageQualities = map[string]struct{}{
	QualityStandard: {}, QualityHigh: {}, QualityUltra: {}, QualityArtistic: {},
}

var videoDurations = map[string]struct{}{
	DurationShort: {}, DurationMedium: {}, DurationLong: {},
}

var motionIntensities = map[string]struct{}{
	MotionSubtle: {}, MotionModerate: {}, MotionDynamic: {}, MotionIntense: {},
}

// ImagePrompt is the structured image generation prompt filled in by the
// remote model. Field set and semantics follow the Google Imagen and Runway
// prompting guides: subject and scene are mandatory, everything else refines
// photography technique, lighting, composition and style.
type ImagePrompt struct {
	Subject              string          `json:"subject"`
	SceneDescription     string          `json:"scene_description"`
	PhotographyType      PhotographyType `json:"photography_type,omitempty"`
	LensType             LensType        `json:"lens_type,omitempty"`
	FocalLength          string          `json:"focal_length,omitempty"`
	LightingType         LightingType    `json:"lighting_type,omitempty"`
	LightingDescription  string          `json:"lighting_description,omitempty"`
	ColorPalette         string          `json:"color_palette,omitempty"`
	ShotType             ShotType        `json:"shot_type,omitempty"`
	CompositionTechnique string          `json:"composition_technique,omitempty"`
	ArtisticStyle        string          `json:"artistic_style,omitempty"`
	MoodAndEmotion       string          `json:"mood_and_emotion,omitempty"`
	AspectRatio          AspectRatio     `json:"aspect_ratio,omitempty"`
	ImageQuality         string          `json:"image_quality,omitempty"`
	CameraSettings       string          `json:"camera_settings,omitempty"`
	NegativePrompt       string          `json:"negative_prompt,omitempty"`
	StyleReference       string          `json:"style_reference,omitempty"`
}

// Validate checks required fields and enumeration membership.
func (p *ImagePrompt) Validate() error {
	if err := requireText("subject", p.Subject, 5); err != nil {
		return err
	}
	if err := requireText("scene_description", p.SceneDescription, 10); err != nil {
		return err
	}
	if p.PhotographyType != "" && !p.PhotographyType.Valid() {
		return badEnum("photography_type", string(p.PhotographyType))
	}
	if p.LensType != "" && !p.LensType.Valid() {
		return badEnum("lens_type", string(p.LensType))
	}
	if p.LightingType != "" && !p.LightingType.Valid() {
		return badEnum("lighting_type", string(p.LightingType))
	}
	if p.ShotType != "" && !p.ShotType.Valid() {
		return badEnum("shot_type", string(p.ShotType))
	}
	if p.AspectRatio != "" && !p.AspectRatio.Valid() {
		return badEnum("aspect_ratio", string(p.AspectRatio))
	}
	if p.ImageQuality != "" {
		if _, ok := imageQualities[p.ImageQuality]; !ok {
			return badEnum("image_quality", p.ImageQuality)
		}
	}
	return nil
}

// VideoPrompt is the structured video generation prompt filled in by the
// remote model, following the Google Veo and Runway Gen-4 guides. Subject,
// context, action and style are mandatory.
type VideoPrompt struct {
	Subject            string         `json:"subject"`
	Context            string         `json:"context"`
	Action             string         `json:"action"`
	Style              string         `json:"style"`
	CameraMovement     CameraMovement `json:"camera_movement,omitempty"`
	CameraDescription  string         `json:"camera_description,omitempty"`
	ShotType           ShotType       `json:"shot_type,omitempty"`
	Composition        string         `json:"composition,omitempty"`
	Lighting           string         `json:"lighting,omitempty"`
	Ambiance           string         `json:"ambiance,omitempty"`
	AspectRatio        AspectRatio    `json:"aspect_ratio,omitempty"`
	DurationPreference string         `json:"duration_preference,omitempty"`
	MotionIntensity    string         `json:"motion_intensity,omitempty"`
	NegativePrompt     string         `json:"negative_prompt,omitempty"`
	ReferenceStyle     string         `json:"reference_style,omitempty"`
	TransitionType     string         `json:"transition_type,omitempty"`
	EmotionalTone      string         `json:"emotional_tone,omitempty"`
}

// Validate checks required fields and enumeration membership.
func (p *VideoPrompt) Validate() error {
	if err := requireText("subject", p.Subject, 3); err != nil {
		return err
	}
	if err := requireText("context", p.Context, 5); err != nil {
		return err
	}
	if err := requireText("action", p.Action, 5); err != nil {
		return err
	}
	if err := requireText("style", p.Style, 5); err != nil {
		return err
	}
	if p.CameraMovement != "" && !p.CameraMovement.Valid() {
		return badEnum("camera_movement", string(p.CameraMovement))
	}
	if p.ShotType != "" && !p.ShotType.Valid() {
		return badEnum("shot_type", string(p.ShotType))
	}
	if p.AspectRatio != "" && !p.AspectRatio.Valid() {
		return badEnum("aspect_ratio", string(p.AspectRatio))
	}
	if p.DurationPreference != "" {
		if _, ok := videoDurations[p.DurationPreference]; !ok {
			return badEnum("duration_preference", p.DurationPreference)
		}
	}
	if p.MotionIntensity != "" {
		if _, ok := motionIntensities[p.MotionIntensity]; !ok {
			return badEnum("motion_intensity", p.MotionIntensity)
		}
	}
	return nil
}

func requireText(field, value string, minLen int) error {
	trimmed := strings.TrimSpace(value)
	if utf8.RuneCountInString(trimmed) < minLen {
		return fmt.Errorf("%w: %s must be at least %d characters", ErrInvalidPrompt, field, minLen)
	}
	return nil
}

func badEnum(field, value string) error {
	return fmt.Errorf("%w: unknown %s %q", ErrInvalidPrompt, field, value)
}

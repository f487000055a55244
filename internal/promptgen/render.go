package promptgen

import (
	"strings"

	"github.com/teron131/Visual-Prompting/internal/domain"
)

// RenderImagePrompt flattens a structured image prompt into a single
// generation-ready string. Sections for unset fields are omitted; quality and
// aspect ratio defaults are left implicit.
func RenderImagePrompt(p domain.ImagePrompt) string {
	var parts []string
	appendPart(&parts, p.Subject)
	appendPart(&parts, p.SceneDescription)
	if p.PhotographyType != "" {
		appendPart(&parts, string(p.PhotographyType)+" photography")
	}
	appendPart(&parts, p.ArtisticStyle)

	var camera []string
	if p.LensType != "" {
		camera = append(camera, string(p.LensType)+" lens")
	}
	appendPart(&camera, p.FocalLength)
	appendPart(&camera, p.CameraSettings)
	if len(camera) > 0 {
		parts = append(parts, strings.Join(camera, ", "))
	}

	switch {
	case p.LightingType != "" && p.LightingDescription != "":
		parts = append(parts, string(p.LightingType)+", "+p.LightingDescription)
	case p.LightingType != "":
		parts = append(parts, string(p.LightingType)+" lighting")
	case p.LightingDescription != "":
		appendPart(&parts, p.LightingDescription)
	}

	var composition []string
	if p.ShotType != "" {
		composition = append(composition, spaced(string(p.ShotType)))
	}
	appendPart(&composition, p.CompositionTechnique)
	if len(composition) > 0 {
		parts = append(parts, strings.Join(composition, ", "))
	}

	appendPart(&parts, p.ColorPalette)
	appendPart(&parts, p.MoodAndEmotion)
	if p.ImageQuality != "" && p.ImageQuality != domain.QualityStandard {
		parts = append(parts, p.ImageQuality+" quality")
	}
	if p.StyleReference != "" {
		parts = append(parts, "in the style of "+p.StyleReference)
	}

	return finish(parts, p.NegativePrompt, p.AspectRatio)
}

// RenderVideoPrompt flattens a structured video prompt into a single
// generation-ready string in the order subject, action, context, camera,
// lighting, style, tone, motion.
func RenderVideoPrompt(p domain.VideoPrompt) string {
	var parts []string
	appendPart(&parts, p.Subject)
	appendPart(&parts, p.Action)
	appendPart(&parts, p.Context)

	var camera []string
	if p.CameraMovement != "" && p.CameraMovement != domain.MoveStatic {
		camera = append(camera, string(p.CameraMovement)+" camera movement")
	}
	appendPart(&camera, p.CameraDescription)
	if p.ShotType != "" {
		camera = append(camera, spaced(string(p.ShotType)))
	}
	appendPart(&camera, p.Composition)
	if len(camera) > 0 {
		parts = append(parts, strings.Join(camera, ", "))
	}

	var lighting []string
	appendPart(&lighting, p.Lighting)
	appendPart(&lighting, p.Ambiance)
	if len(lighting) > 0 {
		parts = append(parts, strings.Join(lighting, ", "))
	}

	appendPart(&parts, p.Style)
	if p.EmotionalTone != "" {
		parts = append(parts, p.EmotionalTone+" tone")
	}
	if p.MotionIntensity != "" && p.MotionIntensity != domain.MotionModerate {
		parts = append(parts, p.MotionIntensity+" motion")
	}
	if p.DurationPreference != "" && p.DurationPreference != domain.DurationMedium {
		parts = append(parts, p.DurationPreference+" duration")
	}
	if p.ReferenceStyle != "" {
		parts = append(parts, "in the style of "+p.ReferenceStyle)
	}

	return finish(parts, p.NegativePrompt, p.AspectRatio)
}

func finish(parts []string, negative string, aspect domain.AspectRatio) string {
	out := strings.Join(parts, ", ")
	if negative = strings.TrimSpace(negative); negative != "" {
		out += " --negative " + negative
	}
	if aspect != "" && aspect != domain.DefaultAspectRatio {
		out += " --ar " + string(aspect)
	}
	return out
}

func appendPart(parts *[]string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*parts = append(*parts, v)
	}
}

func spaced(value string) string {
	return strings.ReplaceAll(value, "_", " ")
}

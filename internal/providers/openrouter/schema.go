package openrouter

import (
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/teron131/Visual-Prompting/internal/domain"
)

const (
	imageToolName = "record_image_prompt"
	videoToolName = "record_video_prompt"
)

// promptToolName returns the function name the model is forced to call for
// the given mode.
func promptToolName(mode domain.Mode) string {
	if mode == domain.ModeVideo {
		return videoToolName
	}
	return imageToolName
}

// promptToolSchema mirrors the domain prompt struct for the given mode so the
// model's tool-call arguments decode straight into it.
func promptToolSchema(mode domain.Mode) jsonschema.Definition {
	if mode == domain.ModeVideo {
		return videoPromptSchema()
	}
	return imagePromptSchema()
}

func imagePromptSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"subject":               str("The main subject, object, person, or scene that serves as the focal point"),
			"scene_description":     str("Detailed description of the setting, environment, and background context"),
			"photography_type":      enum("Type of photography style", photographyTypeValues()),
			"lens_type":             enum("Camera lens type", lensTypeValues()),
			"focal_length":          str("Specific focal length measurement, e.g. 85mm"),
			"lighting_type":         enum("Primary lighting setup and quality", lightingTypeValues()),
			"lighting_description":  str("Detailed lighting characteristics beyond the basic type"),
			"color_palette":         str("Color scheme and tonal characteristics"),
			"shot_type":             enum("Shot framing and camera angle", shotTypeValues()),
			"composition_technique": str("Artistic composition rules and framing techniques"),
			"artistic_style":        str("Artistic movement, aesthetic, or visual style inspiration"),
			"mood_and_emotion":      str("Emotional tone the image should convey"),
			"aspect_ratio":          enum("Image proportions", aspectRatioValues()),
			"image_quality":         enum("Image resolution and detail level", []string{domain.QualityStandard, domain.QualityHigh, domain.QualityUltra, domain.QualityArtistic}),
			"camera_settings":       str("Specific camera technical settings for photorealistic results"),
			"negative_prompt":       str("Visual elements to avoid or exclude"),
			"style_reference":       str("Reference to specific photographers, artists, films, or visual works"),
		},
		Required: []string{"subject", "scene_description"},
	}
}

func videoPromptSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"subject":             str("The primary object, person, animal, or scenery that serves as the main focus"),
			"context":             str("The background, setting, or environment where the action takes place"),
			"action":              str("Specific actions, movements, or behaviors the subject performs"),
			"style":               str("Visual and aesthetic style for the video"),
			"camera_movement":     enum("Type of camera movement during the shot", cameraMovementValues()),
			"camera_description":  str("Detailed description of camera behavior and movement"),
			"shot_type":           enum("Shot composition and framing type", shotTypeValues()),
			"composition":         str("Advanced shot framing and visual composition details"),
			"lighting":            str("Lighting setup, quality, and characteristics"),
			"ambiance":            str("Overall mood, atmosphere, and environmental feeling"),
			"aspect_ratio":        enum("Video aspect ratio", aspectRatioValues()),
			"duration_preference": enum("Preferred video length", []string{domain.DurationShort, domain.DurationMedium, domain.DurationLong}),
			"motion_intensity":    enum("Overall amount of movement and action", []string{domain.MotionSubtle, domain.MotionModerate, domain.MotionDynamic, domain.MotionIntense}),
			"negative_prompt":     str("Elements to avoid or exclude from the video"),
			"reference_style":     str("Reference to specific films, directors, artists, or visual styles"),
			"transition_type":     str("How the video should begin, progress, or end"),
			"emotional_tone":      str("The emotional feeling or mood the video should convey"),
		},
		Required: []string{"subject", "context", "action", "style"},
	}
}

func str(desc string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.String, Description: desc}
}

func enum(desc string, values []string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.String, Description: desc, Enum: values}
}

func aspectRatioValues() []string {
	out := make([]string, 0, len(domain.AspectRatios()))
	for _, v := range domain.AspectRatios() {
		out = append(out, string(v))
	}
	return out
}

func shotTypeValues() []string {
	out := make([]string, 0, len(domain.ShotTypes()))
	for _, v := range domain.ShotTypes() {
		out = append(out, string(v))
	}
	return out
}

func cameraMovementValues() []string {
	out := make([]string, 0, len(domain.CameraMovements()))
	for _, v := range domain.CameraMovements() {
		out = append(out, string(v))
	}
	return out
}

func photographyTypeValues() []string {
	out := make([]string, 0, len(domain.PhotographyTypes()))
	for _, v := range domain.PhotographyTypes() {
		out = append(out, string(v))
	}
	return out
}

func lensTypeValues() []string {
	out := make([]string, 0, len(domain.LensTypes()))
	for _, v := range domain.LensTypes() {
		out = append(out, string(v))
	}
	return out
}

func lightingTypeValues() []string {
	out := make([]string, 0, len(domain.LightingTypes()))
	for _, v := range domain.LightingTypes() {
		out = append(out, string(v))
	}
	return out
}

package promptgen

import (
	"fmt"
	"strings"

	"github.com/teron131/Visual-Prompting/internal/domain"
)

// BuildInstruction produces the system instruction sent to the remote model.
// It names every schema field with its guide-level description, examples,
// choice sets and constraints, adds mode-specific best practices, and pins
// any parameters the caller selected. Deterministic for a given input.
func BuildInstruction(mode domain.Mode, sel domain.ParameterSelections) string {
	if mode == domain.ModeVideo {
		return buildInstruction("video", "VideoPrompt", videoFields(), videoGuidance, videoNegativeGuidance, videoExample, sel)
	}
	return buildInstruction("image", "ImagePrompt", imageFields(), imageGuidance, imageNegativeGuidance, imageExample, sel)
}

func buildInstruction(medium, structName string, fields []fieldSpec, guidance, negativeGuidance, example string, sel domain.ParameterSelections) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "You are an expert %s generation prompt engineer specializing in AI-powered content creation. Transform user requests into professional-quality prompts following industry standards and best practices.\n\n", medium)
	fmt.Fprintf(sb, "## Your Mission\nAnalyze user input and create a comprehensive %s structure. Apply professional-level detail, technical accuracy, and creative enhancement based on modern AI generation capabilities.\n\n", structName)

	sb.WriteString("## Required Fields\nThese fields are essential for every " + medium + " generation prompt:\n\n")
	for _, f := range fields {
		if f.required {
			writeFieldGuide(sb, f)
		}
	}

	sb.WriteString("## Optional Enhancement Fields\nUse these fields to elevate prompt quality and match user intent:\n\n")
	for _, f := range fields {
		if !f.required {
			writeFieldGuide(sb, f)
		}
	}

	sb.WriteString(guidance)
	sb.WriteString(negativeGuidance)
	writeSelections(sb, sel)
	sb.WriteString(professionalGuidelines)
	sb.WriteString("\n## Working Example\nHere's a complete example showing professional-quality field completion:\n\n```json\n")
	sb.WriteString(example)
	sb.WriteString("\n```\n\nUse this as a reference for the level of detail and professional terminology expected.\n")
	fmt.Fprintf(sb, "\n## Response Requirements\nReturn a valid JSON object matching the %s structure exactly. Include all required fields and relevant optional fields based on the user request, creative vision, and industry best practices.", structName)
	return sb.String()
}

func writeFieldGuide(sb *strings.Builder, f fieldSpec) {
	title := domain.Labelize(f.name)
	requirement := "Optional Field"
	if f.required {
		requirement = "Required Field"
	}
	fmt.Fprintf(sb, "### %s\n**%s**\n\n%s\n", title, requirement, f.desc)
	if len(f.examples) > 0 {
		sb.WriteString("\n**Examples:**\n")
		for _, ex := range f.examples {
			fmt.Fprintf(sb, "  - %s\n", ex)
		}
	}
	if len(f.choices) > 0 {
		sb.WriteString("\n**Available choices:**\n")
		for _, c := range f.choices {
			fmt.Fprintf(sb, "  - %s: %s\n", c.value, c.hint)
		}
	}
	if f.minLen > 0 || f.maxLen > 0 {
		var constraints []string
		if f.minLen > 0 {
			constraints = append(constraints, fmt.Sprintf("minimum %d characters", f.minLen))
		}
		if f.maxLen > 0 {
			constraints = append(constraints, fmt.Sprintf("maximum %d characters", f.maxLen))
		}
		fmt.Fprintf(sb, "\n**Constraints:** %s\n", strings.Join(constraints, ", "))
	}
	sb.WriteString("\n---\n\n")
}

// writeSelections pins user-chosen enumerated parameters. Nothing is written
// when no parameter was supplied.
func writeSelections(sb *strings.Builder, sel domain.ParameterSelections) {
	if sel.Empty() {
		return
	}
	sb.WriteString("\n## User Selections\nThe user pinned the following parameters. Set these fields to exactly these values:\n")
	if sel.AspectRatio != "" {
		fmt.Fprintf(sb, "  - aspect_ratio: %s\n", sel.AspectRatio)
	}
	if sel.ShotType != "" {
		fmt.Fprintf(sb, "  - shot_type: %s\n", sel.ShotType)
	}
	if sel.CameraMovement != "" {
		fmt.Fprintf(sb, "  - camera_movement: %s\n", sel.CameraMovement)
	}
	if sel.PhotographyType != "" {
		fmt.Fprintf(sb, "  - photography_type: %s\n", sel.PhotographyType)
	}
	if sel.LensType != "" {
		fmt.Fprintf(sb, "  - lens_type: %s\n", sel.LensType)
	}
	if sel.LightingType != "" {
		fmt.Fprintf(sb, "  - lighting_type: %s\n", sel.LightingType)
	}
}

const imageGuidance = `
## Professional Image Generation Best Practices

### Core Structure (Subject + Context + Style)
- **Subject**: The main object, person, animal, or scenery (be specific and descriptive)
- **Context**: Background and environment where the subject is placed
- **Style**: General (painting, photograph) or specific (pastel painting, film noir)

### Photography Technical Specifications
- **For Portraits**: 24-35mm lens, shallow depth of field, prime/zoom lens
- **For Objects/Still Life**: 60-105mm macro lens, high detail, controlled lighting
- **For Motion**: 100-400mm telephoto, fast shutter speed, action tracking
- **For Landscapes**: 10-24mm wide-angle, long exposure, sharp focus throughout

### Camera Settings for Photorealism
Include specific technical settings such as f/1.4 (shallow depth of field),
f/8 (sharp focus throughout), 1/500s (fast shutter), ISO 100 (minimal noise).
`

const videoGuidance = `
## Professional Video Generation Best Practices

### Essential Elements for Video Generation
1. **Subject**: Object, person, animal, or scenery you want
2. **Context**: Background/environment where the subject is placed
3. **Action**: What the subject is doing (walking, running, turning head)
4. **Style**: Film style (horror film, film noir) or animation (cartoon style)
5. **Camera Motion**: Aerial view, eye-level, tracking shot, dolly movement
6. **Composition**: Wide shot, close-up, extreme close-up framing
7. **Ambiance**: Color and lighting (blue tones, warm tones, golden hour)

### Video Generation Principles
- **Power of Simplicity**: Often less is more; let the model fill in contextually appropriate details
- **Quality**: Smooth motion, cinematic look, specific film references
`

const imageNegativeGuidance = `
### Negative Prompts
- Do: describe what you don't want plainly (e.g., "blurry, overexposed, distorted")
- Don't: use instructive language ("no", "don't show", "avoid")
`

const videoNegativeGuidance = `
### Negative Prompts
- Do: describe unwanted elements plainly (e.g., "urban background, dark atmosphere")
- Don't: use instructive language ("no walls", "don't show buildings")

### Multiple Characters (Image-to-Video)
When multiple subjects are present, use distinguishing details:
"the man in the red hat", "the woman in the blue dress".
`

const professionalGuidelines = `
## Professional Guidelines

1. **Descriptive Precision**: use detailed adjectives and adverbs; be specific rather than generic ("confident business executive" vs "nice person").
2. **Technical Excellence**: use proper terminology for camera, lighting, and composition.
3. **Creative Enhancement**: expand user input with professional artistic details; balance creative vision with technical feasibility.
4. **Structured Approach**: ensure all fields work harmoniously together and keep style and tone consistent across fields.
5. **Quality Optimization**: include appropriate quality modifiers, aspect ratios and technical settings; balance detail with clarity.
`

const imageExample = `{
  "subject": "a professional woman in her 30s wearing a navy blazer with confident expression",
  "scene_description": "in a modern minimalist office with floor-to-ceiling windows overlooking a city skyline during golden hour",
  "photography_type": "portrait",
  "lens_type": "portrait",
  "focal_length": "85mm",
  "lighting_type": "golden_hour",
  "lighting_description": "warm golden light streaming through windows creating soft highlights on her face",
  "color_palette": "warm golden tones with deep blue accents from the cityscape",
  "shot_type": "medium_close_up",
  "composition_technique": "rule of thirds with subject positioned on right intersection",
  "artistic_style": "contemporary corporate portrait with cinematic quality",
  "mood_and_emotion": "confident and professional with approachable warmth",
  "aspect_ratio": "3:2",
  "image_quality": "high",
  "camera_settings": "f/2.8 shallow depth of field with sharp focus on eyes"
}`

const videoExample = `{
  "subject": "a golden retriever with a red collar",
  "context": "in a sunlit meadow filled with wildflowers during golden hour",
  "action": "runs joyfully toward the camera with tongue hanging out",
  "style": "cinematic documentary style with warm color grading",
  "camera_movement": "tracking",
  "camera_description": "smooth tracking shot following the dog's movement",
  "shot_type": "medium_wide_shot",
  "lighting": "warm golden hour sunlight with soft shadows",
  "ambiance": "peaceful spring afternoon with gentle warm tones",
  "aspect_ratio": "16:9",
  "motion_intensity": "dynamic",
  "emotional_tone": "joyful and energetic"
}`

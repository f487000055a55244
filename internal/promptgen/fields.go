package promptgen

import "github.com/teron131/Visual-Prompting/internal/domain"

// fieldSpec documents one schema field for the model instruction: what it
// means, worked examples, the closed choice set when the field is an
// enumeration, and length bounds.
type fieldSpec struct {
	name     string
	required bool
	desc     string
	examples []string
	choices  []choice
	minLen   int
	maxLen   int
}

type choice struct {
	value string
	hint  string
}

func aspectRatioChoices() []choice {
	out := make([]choice, 0, len(domain.AspectRatios()))
	for _, v := range domain.AspectRatios() {
		out = append(out, choice{value: string(v), hint: v.Hint()})
	}
	return out
}

func shotTypeChoices() []choice {
	out := make([]choice, 0, len(domain.ShotTypes()))
	for _, v := range domain.ShotTypes() {
		out = append(out, choice{value: string(v), hint: v.Hint()})
	}
	return out
}

func cameraMovementChoices() []choice {
	out := make([]choice, 0, len(domain.CameraMovements()))
	for _, v := range domain.CameraMovements() {
		out = append(out, choice{value: string(v), hint: v.Hint()})
	}
	return out
}

func photographyTypeChoices() []choice {
	out := make([]choice, 0, len(domain.PhotographyTypes()))
	for _, v := range domain.PhotographyTypes() {
		out = append(out, choice{value: string(v), hint: v.Hint()})
	}
	return out
}

func lensTypeChoices() []choice {
	out := make([]choice, 0, len(domain.LensTypes()))
	for _, v := range domain.LensTypes() {
		out = append(out, choice{value: string(v), hint: v.Hint()})
	}
	return out
}

func lightingTypeChoices() []choice {
	out := make([]choice, 0, len(domain.LightingTypes()))
	for _, v := range domain.LightingTypes() {
		out = append(out, choice{value: string(v), hint: v.Hint()})
	}
	return out
}

func literalChoices(pairs ...[2]string) []choice {
	out := make([]choice, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, choice{value: p[0], hint: p[1]})
	}
	return out
}

func imageFields() []fieldSpec {
	return []fieldSpec{
		{
			name:     "subject",
			required: true,
			desc:     "The main subject, object, person, or scene that serves as the focal point. Be specific and descriptive with unique characteristics.",
			examples: []string{
				"a professional woman in a navy blazer with confident expression",
				"a vintage red bicycle leaning against a weathered brick wall",
				"a golden retriever with floppy ears sitting in autumn leaves",
			},
			minLen: 5, maxLen: 300,
		},
		{
			name:     "scene_description",
			required: true,
			desc:     "Detailed description of the setting, environment, and background context. Include location, time of day, weather, atmosphere, and surrounding elements.",
			examples: []string{
				"in a modern minimalist office with floor-to-ceiling windows",
				"on a misty mountain trail during sunrise",
				"in a bustling Tokyo street with neon signs reflecting on wet pavement",
			},
			minLen: 10, maxLen: 400,
		},
		{
			name:    "photography_type",
			desc:    "Type of photography style that determines overall approach and technique.",
			choices: photographyTypeChoices(),
		},
		{
			name:    "lens_type",
			desc:    "Camera lens type that affects perspective, depth of field, and framing.",
			choices: lensTypeChoices(),
		},
		{
			name: "focal_length",
			desc: "Specific focal length measurement for precise lens control.",
			examples: []string{
				"35mm for street photography", "85mm for portraits", "200mm for wildlife", "14mm for ultra-wide architecture",
			},
			maxLen: 20,
		},
		{
			name:    "lighting_type",
			desc:    "Primary lighting setup and quality.",
			choices: lightingTypeChoices(),
		},
		{
			name: "lighting_description",
			desc: "Detailed lighting characteristics beyond the basic type.",
			examples: []string{
				"dramatic side lighting creating strong shadows on the left side",
				"soft diffused light from large window creating gentle highlights",
			},
			maxLen: 250,
		},
		{
			name: "color_palette",
			desc: "Color scheme and tonal characteristics of the image.",
			examples: []string{
				"warm earth tones with golden and brown hues",
				"monochromatic blue palette with various shades",
				"vibrant saturated colors with neon accents",
			},
			maxLen: 200,
		},
		{
			name:    "shot_type",
			desc:    "Shot framing and camera angle.",
			choices: shotTypeChoices(),
		},
		{
			name: "composition_technique",
			desc: "Artistic composition rules and framing techniques.",
			examples: []string{
				"rule of thirds with subject positioned on left intersection",
				"symmetrical composition with perfect center balance",
				"leading lines drawing viewer's eye from foreground to background",
			},
			maxLen: 250,
		},
		{
			name: "artistic_style",
			desc: "Artistic movement, aesthetic, or visual style inspiration.",
			examples: []string{
				"Renaissance painting style with dramatic chiaroscuro",
				"minimalist modern aesthetic with clean lines",
				"cyberpunk aesthetic with neon colors and urban decay",
			},
			maxLen: 200,
		},
		{
			name: "mood_and_emotion",
			desc: "Emotional tone and psychological feeling the image should convey.",
			examples: []string{
				"serene and peaceful with calming atmosphere",
				"dramatic and intense with tension and energy",
			},
			maxLen: 150,
		},
		{
			name:    "aspect_ratio",
			desc:    "Image proportions for different use cases.",
			choices: aspectRatioChoices(),
		},
		{
			name: "image_quality",
			desc: "Image resolution and detail level.",
			choices: literalChoices(
				[2]string{domain.QualityStandard, "Baseline detail"},
				[2]string{domain.QualityHigh, "Detailed work"},
				[2]string{domain.QualityUltra, "Maximum resolution"},
				[2]string{domain.QualityArtistic, "Creative interpretation with stylization"},
			),
		},
		{
			name: "camera_settings",
			desc: "Specific camera technical settings for photorealistic results.",
			examples: []string{
				"f/1.4 shallow depth of field", "f/8 sharp focus throughout",
				"1/500s fast shutter speed freezing motion", "ISO 100 minimal noise",
			},
			maxLen: 200,
		},
		{
			name: "negative_prompt",
			desc: "Visual elements to avoid or exclude from the image.",
			examples: []string{
				"blurry details, overexposed highlights, distorted proportions",
				"artificial lighting, cluttered background, poor composition",
			},
			maxLen: 200,
		},
		{
			name: "style_reference",
			desc: "Reference to specific photographers, artists, films, or visual works.",
			examples: []string{
				"Annie Leibovitz portrait style", "Ansel Adams landscape photography",
				"Blade Runner 2049 cinematography",
			},
			maxLen: 150,
		},
	}
}

func videoFields() []fieldSpec {
	return []fieldSpec{
		{
			name:     "subject",
			required: true,
			desc:     "The primary object, person, animal, or scenery that serves as the main focus. Be specific and descriptive with unique characteristics.",
			examples: []string{
				"a golden retriever with floppy ears",
				"a majestic oak tree with autumn leaves",
				"a woman in a red dress",
			},
			minLen: 3, maxLen: 200,
		},
		{
			name:     "context",
			required: true,
			desc:     "The background, setting, or environment where the action takes place. Include spatial relationships and environmental details.",
			examples: []string{
				"in a misty forest clearing at dawn",
				"on a busy city street during rush hour",
				"inside a cozy library with warm lighting",
			},
			minLen: 5, maxLen: 300,
		},
		{
			name:     "action",
			required: true,
			desc:     "Specific actions, movements, or behaviors the subject performs. Use active, concrete verbs rather than abstract concepts.",
			examples: []string{
				"walks slowly while looking over shoulder",
				"jumps with excitement, arms raised high",
				"carefully paints brushstrokes on canvas",
			},
			minLen: 5, maxLen: 250,
		},
		{
			name:     "style",
			required: true,
			desc:     "Visual and aesthetic style for the video.",
			examples: []string{
				"film noir with high contrast shadows",
				"Studio Ghibli animated style",
				"1970s retro aesthetic with warm film grain",
			},
			minLen: 5, maxLen: 200,
		},
		{
			name:    "camera_movement",
			desc:    "Type of camera movement during the shot.",
			choices: cameraMovementChoices(),
		},
		{
			name: "camera_description",
			desc: "Detailed description of camera behavior and movement.",
			examples: []string{
				"smooth dolly shot moving from left to right",
				"handheld camera with gentle natural movement",
				"static wide shot that slowly zooms into character's face",
			},
			maxLen: 200,
		},
		{
			name:    "shot_type",
			desc:    "Shot composition and framing type.",
			choices: shotTypeChoices(),
		},
		{
			name: "composition",
			desc: "Advanced shot framing and visual composition details.",
			examples: []string{
				"rule of thirds with subject on left third",
				"symmetrical composition with centered subject",
				"shallow depth of field with blurred background",
			},
			maxLen: 200,
		},
		{
			name: "lighting",
			desc: "Lighting setup, quality, and characteristics.",
			examples: []string{
				"soft golden hour lighting", "dramatic high contrast shadows",
				"neon lighting with colored reflections",
			},
			maxLen: 200,
		},
		{
			name: "ambiance",
			desc: "Overall mood, atmosphere, and environmental feeling.",
			examples: []string{
				"warm sunset tones with orange and pink hues",
				"cool blue moonlight with misty atmosphere",
			},
			maxLen: 200,
		},
		{
			name:    "aspect_ratio",
			desc:    "Video aspect ratio for different platforms.",
			choices: aspectRatioChoices(),
		},
		{
			name: "duration_preference",
			desc: "Preferred video length based on content complexity.",
			choices: literalChoices(
				[2]string{domain.DurationShort, "Quick actions (2-5s)"},
				[2]string{domain.DurationMedium, "Standard clips (5-10s)"},
				[2]string{domain.DurationLong, "Complex sequences (10+ seconds)"},
			),
		},
		{
			name: "motion_intensity",
			desc: "Overall amount of movement and action in the video.",
			choices: literalChoices(
				[2]string{domain.MotionSubtle, "Gentle movement"},
				[2]string{domain.MotionModerate, "Balanced pacing"},
				[2]string{domain.MotionDynamic, "Energetic action"},
				[2]string{domain.MotionIntense, "High-energy sequences with rapid changes"},
			),
		},
		{
			name: "negative_prompt",
			desc: "Elements to avoid or exclude from the video.",
			examples: []string{
				"blurry motion, camera shake, distorted faces",
				"poor lighting, choppy movement, unnatural physics",
			},
			maxLen: 200,
		},
		{
			name: "reference_style",
			desc: "Reference to specific films, directors, artists, or visual styles.",
			examples: []string{
				"Blade Runner 2049 cinematography", "Miyazaki animation style",
				"Kubrick symmetrical framing",
			},
			maxLen: 150,
		},
		{
			name: "transition_type",
			desc: "How the video should begin, progress, or end if part of a sequence.",
			examples: []string{
				"fade in from black", "seamless loop", "dramatic reveal at climax",
			},
			maxLen: 100,
		},
		{
			name: "emotional_tone",
			desc: "The emotional feeling or mood the video should convey.",
			examples: []string{
				"peaceful and serene", "tense and suspenseful", "joyful and energetic",
			},
			maxLen: 100,
		},
	}
}

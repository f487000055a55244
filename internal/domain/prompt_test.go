package domain

import (
	"errors"
	"testing"
)

func validImagePrompt() ImagePrompt {
	return ImagePrompt{
		Subject:          "a vintage red bicycle leaning against a weathered brick wall",
		SceneDescription: "on a quiet cobblestone street in the early morning",
	}
}

func validVideoPrompt() VideoPrompt {
	return VideoPrompt{
		Subject: "a golden retriever with a red collar",
		Context: "in a sunlit meadow filled with wildflowers",
		Action:  "runs joyfully toward the camera",
		Style:   "cinematic documentary style with warm color grading",
	}
}

func TestImagePromptValidate(t *testing.T) {
	t.Parallel()
	p := validImagePrompt()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid prompt rejected: %v", err)
	}

	p = validImagePrompt()
	p.Subject = "dog"
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrompt) {
		t.Fatalf("short subject: err = %v, want ErrInvalidPrompt", err)
	}

	p = validImagePrompt()
	p.SceneDescription = "   "
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrompt) {
		t.Fatalf("blank scene: err = %v, want ErrInvalidPrompt", err)
	}

	p = validImagePrompt()
	p.LensType = "anamorphic"
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrompt) {
		t.Fatalf("bad lens: err = %v, want ErrInvalidPrompt", err)
	}

	p = validImagePrompt()
	p.ImageQuality = "cinema"
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrompt) {
		t.Fatalf("bad quality: err = %v, want ErrInvalidPrompt", err)
	}

	p = validImagePrompt()
	p.PhotographyType = PhotoFood
	p.LightingType = LightSoftBox
	p.ShotType = ShotCloseUp
	p.AspectRatio = AspectSquare
	p.ImageQuality = QualityUltra
	if err := p.Validate(); err != nil {
		t.Fatalf("fully specified prompt rejected: %v", err)
	}
}

func TestVideoPromptValidate(t *testing.T) {
	t.Parallel()
	p := validVideoPrompt()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid prompt rejected: %v", err)
	}

	p = validVideoPrompt()
	p.Action = "sits"
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrompt) {
		t.Fatalf("short action: err = %v, want ErrInvalidPrompt", err)
	}

	p = validVideoPrompt()
	p.CameraMovement = "orbit"
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrompt) {
		t.Fatalf("bad movement: err = %v, want ErrInvalidPrompt", err)
	}

	p = validVideoPrompt()
	p.MotionIntensity = "frantic"
	if err := p.Validate(); !errors.Is(err, ErrInvalidPrompt) {
		t.Fatalf("bad motion: err = %v, want ErrInvalidPrompt", err)
	}

	p = validVideoPrompt()
	p.CameraMovement = MoveDrone
	p.ShotType = ShotWide
	p.DurationPreference = DurationShort
	p.MotionIntensity = MotionDynamic
	p.AspectRatio = AspectPortrait
	if err := p.Validate(); err != nil {
		t.Fatalf("fully specified prompt rejected: %v", err)
	}
}

package domain

import "testing"

func TestEnumValidity(t *testing.T) {
	t.Parallel()
	if !AspectWidescreen.Valid() {
		t.Fatal("16:9 should be a valid aspect ratio")
	}
	if AspectRatio("2:1").Valid() {
		t.Fatal("2:1 should not be a valid aspect ratio")
	}
	if !ShotCloseUp.Valid() || ShotType("dutch_angle").Valid() {
		t.Fatal("shot type validity mismatch")
	}
	if !MoveTracking.Valid() || CameraMovement("orbit").Valid() {
		t.Fatal("camera movement validity mismatch")
	}
	if !PhotoStreet.Valid() || PhotographyType("astro").Valid() {
		t.Fatal("photography type validity mismatch")
	}
	if !LensFisheye.Valid() || LensType("tilt_shift").Valid() {
		t.Fatal("lens type validity mismatch")
	}
	if !LightNeon.Valid() || LightingType("strobe").Valid() {
		t.Fatal("lighting type validity mismatch")
	}
}

func TestEnumValuesCoverHints(t *testing.T) {
	t.Parallel()
	if got, want := len(AspectRatios()), len(aspectRatioHints); got != want {
		t.Fatalf("aspect ratios: %d values, %d hints", got, want)
	}
	if got, want := len(ShotTypes()), len(shotTypeHints); got != want {
		t.Fatalf("shot types: %d values, %d hints", got, want)
	}
	if got, want := len(CameraMovements()), len(cameraMovementHints); got != want {
		t.Fatalf("camera movements: %d values, %d hints", got, want)
	}
	if got, want := len(PhotographyTypes()), len(photographyTypeHints); got != want {
		t.Fatalf("photography types: %d values, %d hints", got, want)
	}
	if got, want := len(LensTypes()), len(lensTypeHints); got != want {
		t.Fatalf("lens types: %d values, %d hints", got, want)
	}
	if got, want := len(LightingTypes()), len(lightingTypeHints); got != want {
		t.Fatalf("lighting types: %d values, %d hints", got, want)
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()
	cases := []struct {
		got  string
		want string
	}{
		{ShotBirdEye.Label(), "Bird Eye View"},
		{MoveZoomIn.Label(), "Zoom In"},
		{PhotoProduct.Label(), "Product"},
		{LensWideAngle.Label(), "Wide Angle"},
		{LightGoldenHour.Label(), "Golden Hour"},
		{AspectUltrawide.Label(), "21:9"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("label = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestModeValid(t *testing.T) {
	t.Parallel()
	if !ModeImage.Valid() || !ModeVideo.Valid() {
		t.Fatal("image and video must be valid modes")
	}
	if Mode("audio").Valid() || Mode("").Valid() {
		t.Fatal("unknown modes must be invalid")
	}
}

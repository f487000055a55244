package domain

import "fmt"

// ParameterSelections carries the enumerated parameters a caller pinned for a
// generation request. All fields are optional; supplied values must belong to
// their enumeration and to the requested mode.
type ParameterSelections struct {
	AspectRatio     AspectRatio     `json:"aspect_ratio,omitempty"`
	ShotType        ShotType        `json:"shot_type,omitempty"`
	CameraMovement  CameraMovement  `json:"camera_movement,omitempty"`
	PhotographyType PhotographyType `json:"photography_type,omitempty"`
	LensType        LensType        `json:"lens_type,omitempty"`
	LightingType    LightingType    `json:"lighting_type,omitempty"`
}

// Empty reports whether no parameter was selected.
func (s ParameterSelections) Empty() bool {
	return s == ParameterSelections{}
}

// Validate checks every supplied selection against its enumeration and
// rejects parameters that do not apply to the requested mode.
func (s ParameterSelections) Validate(mode Mode) error {
	if s.AspectRatio != "" && !s.AspectRatio.Valid() {
		return badEnum("aspect_ratio", string(s.AspectRatio))
	}
	if s.ShotType != "" && !s.ShotType.Valid() {
		return badEnum("shot_type", string(s.ShotType))
	}
	if s.CameraMovement != "" {
		if mode != ModeVideo {
			return fmt.Errorf("%w: camera_movement applies to video only", ErrInvalidRequest)
		}
		if !s.CameraMovement.Valid() {
			return badEnum("camera_movement", string(s.CameraMovement))
		}
	}
	if s.PhotographyType != "" {
		if mode != ModeImage {
			return fmt.Errorf("%w: photography_type applies to image only", ErrInvalidRequest)
		}
		if !s.PhotographyType.Valid() {
			return badEnum("photography_type", string(s.PhotographyType))
		}
	}
	if s.LensType != "" {
		if mode != ModeImage {
			return fmt.Errorf("%w: lens_type applies to image only", ErrInvalidRequest)
		}
		if !s.LensType.Valid() {
			return badEnum("lens_type", string(s.LensType))
		}
	}
	if s.LightingType != "" {
		if mode != ModeImage {
			return fmt.Errorf("%w: lighting_type applies to image only", ErrInvalidRequest)
		}
		if !s.LightingType.Valid() {
			return badEnum("lighting_type", string(s.LightingType))
		}
	}
	return nil
}

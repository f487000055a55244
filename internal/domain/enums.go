package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode selects which prompt schema a generation request targets.
type Mode string

const (
	ModeImage Mode = "image"
	ModeVideo Mode = "video"
)

func (m Mode) Valid() bool {
	return m == ModeImage || m == ModeVideo
}

// AspectRatio is a supported media proportion.
type AspectRatio string

const (
	AspectSquare     AspectRatio = "1:1"
	AspectWidescreen AspectRatio = "16:9"
	AspectPortrait   AspectRatio = "9:16"
	AspectClassic    AspectRatio = "4:3"
	AspectUltrawide  AspectRatio = "21:9"
	AspectGolden     AspectRatio = "3:2"
)

// DefaultAspectRatio is applied when a prompt omits the aspect ratio.
const DefaultAspectRatio = AspectWidescreen

var aspectRatioHints = map[AspectRatio]string{
	AspectSquare:     "Perfect for social media, profile pictures, product shots",
	AspectWidescreen: "Landscape, ideal for TVs, monitors, scenic landscapes",
	AspectPortrait:   "Portrait, ideal for mobile, social media, tall objects",
	AspectClassic:    "Traditional photography ratio",
	AspectUltrawide:  "Cinematic ultrawide format",
	AspectGolden:     "Golden ratio, natural photography",
}

func AspectRatios() []AspectRatio {
	return []AspectRatio{AspectSquare, AspectWidescreen, AspectPortrait, AspectClassic, AspectUltrawide, AspectGolden}
}

func (a AspectRatio) Valid() bool {
	_, ok := aspectRatioHints[a]
	return ok
}

func (a AspectRatio) Hint() string { return aspectRatioHints[a] }

// Ratios read as-is; no title casing.
func (a AspectRatio) Label() string { return string(a) }

// ShotType covers common shot compositions and framing.
type ShotType string

const (
	ShotExtremeWide    ShotType = "extreme_wide_shot"
	ShotWide           ShotType = "wide_shot"
	ShotMediumWide     ShotType = "medium_wide_shot"
	ShotMedium         ShotType = "medium_shot"
	ShotMediumClose    ShotType = "medium_close_up"
	ShotCloseUp        ShotType = "close_up"
	ShotExtremeCloseUp ShotType = "extreme_close_up"
	ShotBirdEye        ShotType = "bird_eye_view"
	ShotLowAngle       ShotType = "low_angle"
	ShotHighAngle      ShotType = "high_angle"
	ShotEyeLevel       ShotType = "eye_level"
)

var shotTypeHints = map[ShotType]string{
	ShotExtremeWide:    "Shows entire environment, subjects are small",
	ShotWide:           "Shows full subject and surroundings",
	ShotMediumWide:     "Shows subject from knees up",
	ShotMedium:         "Shows subject from waist up",
	ShotMediumClose:    "Shows subject from chest up",
	ShotCloseUp:        "Shows subject's face and shoulders",
	ShotExtremeCloseUp: "Shows specific details, eyes, hands",
	ShotBirdEye:        "High overhead perspective",
	ShotLowAngle:       "Camera below subject, looking up",
	ShotHighAngle:      "Camera above subject, looking down",
	ShotEyeLevel:       "Camera at subject's eye level",
}

func ShotTypes() []ShotType {
	return []ShotType{ShotExtremeWide, ShotWide, ShotMediumWide, ShotMedium, ShotMediumClose, ShotCloseUp, ShotExtremeCloseUp, ShotBirdEye, ShotLowAngle, ShotHighAngle, ShotEyeLevel}
}

func (s ShotType) Valid() bool {
	_, ok := shotTypeHints[s]
	return ok
}

func (s ShotType) Hint() string  { return shotTypeHints[s] }
func (s ShotType) Label() string { return labelize(string(s)) }

// CameraMovement covers camera motion types for video.
type CameraMovement string

const (
	MoveStatic   CameraMovement = "static"
	MovePan      CameraMovement = "pan"
	MoveTilt     CameraMovement = "tilt"
	MoveZoomIn   CameraMovement = "zoom_in"
	MoveZoomOut  CameraMovement = "zoom_out"
	MoveDolly    CameraMovement = "dolly"
	MoveTracking CameraMovement = "tracking"
	MoveHandheld CameraMovement = "handheld"
	MoveDrone    CameraMovement = "drone"
	MoveCrane    CameraMovement = "crane"
)

var cameraMovementHints = map[CameraMovement]string{
	MoveStatic:   "Camera remains stationary",
	MovePan:      "Horizontal camera rotation",
	MoveTilt:     "Vertical camera rotation",
	MoveZoomIn:   "Lens zooms closer to subject",
	MoveZoomOut:  "Lens zooms away from subject",
	MoveDolly:    "Camera moves physically closer/farther",
	MoveTracking: "Camera follows subject movement",
	MoveHandheld: "Natural camera shake, documentary style",
	MoveDrone:    "Aerial perspective with smooth movement",
	MoveCrane:    "High sweeping movements, cinematic",
}

func CameraMovements() []CameraMovement {
	return []CameraMovement{MoveStatic, MovePan, MoveTilt, MoveZoomIn, MoveZoomOut, MoveDolly, MoveTracking, MoveHandheld, MoveDrone, MoveCrane}
}

func (c CameraMovement) Valid() bool {
	_, ok := cameraMovementHints[c]
	return ok
}

func (c CameraMovement) Hint() string  { return cameraMovementHints[c] }
func (c CameraMovement) Label() string { return labelize(string(c)) }

// PhotographyType covers photography genres for image prompts.
type PhotographyType string

const (
	PhotoPortrait      PhotographyType = "portrait"
	PhotoLandscape     PhotographyType = "landscape"
	PhotoMacro         PhotographyType = "macro"
	PhotoStreet        PhotographyType = "street"
	PhotoProduct       PhotographyType = "product"
	PhotoArchitectural PhotographyType = "architectural"
	PhotoWildlife      PhotographyType = "wildlife"
	PhotoFood          PhotographyType = "food"
	PhotoFashion       PhotographyType = "fashion"
	PhotoAbstract      PhotographyType = "abstract"
	PhotoStudio        PhotographyType = "studio"
	PhotoDocumentary   PhotographyType = "documentary"
)

var photographyTypeHints = map[PhotographyType]string{
	PhotoPortrait:      "People, characters, headshots, personality",
	PhotoLandscape:     "Natural scenery, wide vistas, outdoors",
	PhotoMacro:         "Close-up details, small subjects, textures",
	PhotoStreet:        "Urban, candid, documentary style",
	PhotoProduct:       "Commercial, clean backgrounds, advertising",
	PhotoArchitectural: "Buildings, structures, interiors, design",
	PhotoWildlife:      "Animals in natural habitats, nature",
	PhotoFood:          "Culinary, still life, restaurant style",
	PhotoFashion:       "Clothing, style, modeling, editorial",
	PhotoAbstract:      "Artistic, conceptual, non-representational",
	PhotoStudio:        "Controlled lighting, professional setup",
	PhotoDocumentary:   "Photojournalism, real-life events, storytelling",
}

func PhotographyTypes() []PhotographyType {
	return []PhotographyType{PhotoPortrait, PhotoLandscape, PhotoMacro, PhotoStreet, PhotoProduct, PhotoArchitectural, PhotoWildlife, PhotoFood, PhotoFashion, PhotoAbstract, PhotoStudio, PhotoDocumentary}
}

func (p PhotographyType) Valid() bool {
	_, ok := photographyTypeHints[p]
	return ok
}

func (p PhotographyType) Hint() string  { return photographyTypeHints[p] }
func (p PhotographyType) Label() string { return labelize(string(p)) }

// LensType covers camera lens families for image prompts.
type LensType string

const (
	LensWideAngle LensType = "wide_angle"
	LensStandard  LensType = "standard"
	LensPortrait  LensType = "portrait"
	LensTelephoto LensType = "telephoto"
	LensMacro     LensType = "macro"
	LensFisheye   LensType = "fisheye"
)

var lensTypeHints = map[LensType]string{
	LensWideAngle: "10-24mm, landscapes, architecture, dramatic perspective",
	LensStandard:  "35-50mm, natural perspective, everyday photography",
	LensPortrait:  "85-135mm, portraits, shallow DOF, compression",
	LensTelephoto: "100-400mm, sports, wildlife, distant subjects",
	LensMacro:     "60-105mm, close-up details, 1:1 reproduction",
	LensFisheye:   "Ultra-wide, distorted perspective, creative effects",
}

func LensTypes() []LensType {
	return []LensType{LensWideAngle, LensStandard, LensPortrait, LensTelephoto, LensMacro, LensFisheye}
}

func (l LensType) Valid() bool {
	_, ok := lensTypeHints[l]
	return ok
}

func (l LensType) Hint() string  { return lensTypeHints[l] }
func (l LensType) Label() string { return labelize(string(l)) }

// LightingType covers lighting setups for image prompts.
type LightingType string

const (
	LightNatural      LightingType = "natural"
	LightGoldenHour   LightingType = "golden_hour"
	LightBlueHour     LightingType = "blue_hour"
	LightStudio       LightingType = "studio"
	LightSoftBox      LightingType = "soft_box"
	LightHardLight    LightingType = "hard_light"
	LightBacklighting LightingType = "backlighting"
	LightSideLighting LightingType = "side_lighting"
	LightRingLight    LightingType = "ring_light"
	LightCandlelight  LightingType = "candlelight"
	LightNeon         LightingType = "neon"
)

var lightingTypeHints = map[LightingType]string{
	LightNatural:      "Sunlight, ambient lighting, outdoors",
	LightGoldenHour:   "Warm, soft sunset/sunrise light",
	LightBlueHour:     "Cool twilight lighting, magical atmosphere",
	LightStudio:       "Controlled artificial lighting setup",
	LightSoftBox:      "Diffused, even lighting, minimal shadows",
	LightHardLight:    "Sharp shadows, dramatic contrast, directional",
	LightBacklighting: "Light behind subject, rim lighting, silhouettes",
	LightSideLighting: "Light from side, dramatic shadows, depth",
	LightRingLight:    "Even, shadowless lighting, beauty photography",
	LightCandlelight:  "Warm, intimate atmosphere, low light",
	LightNeon:         "Colorful artificial lighting, urban night",
}

func LightingTypes() []LightingType {
	return []LightingType{LightNatural, LightGoldenHour, LightBlueHour, LightStudio, LightSoftBox, LightHardLight, LightBacklighting, LightSideLighting, LightRingLight, LightCandlelight, LightNeon}
}

func (l LightingType) Valid() bool {
	_, ok := lightingTypeHints[l]
	return ok
}

func (l LightingType) Hint() string  { return lightingTypeHints[l] }
func (l LightingType) Label() string { return labelize(string(l)) }

var labelCaser = cases.Title(language.English)

// Labelize renders an enum value for display: underscores become spaces and
// words are title-cased.
func Labelize(value string) string {
	return labelCaser.String(strings.ReplaceAll(value, "_", " "))
}

func labelize(value string) string { return Labelize(value) }

package config

import "fmt"

// SizePreset names a common map size.
type SizePreset string

const (
	SizeTiny     SizePreset = "tiny"
	SizeSmall    SizePreset = "small"
	SizeStandard SizePreset = "standard"
	SizeHuge     SizePreset = "huge"
	SizeMax      SizePreset = "max"
)

// presetDims are the inclusive (width, height) maxima for each preset.
var presetDims = map[SizePreset][2]uint8{
	SizeTiny:     {15, 11},
	SizeSmall:    {31, 15},
	SizeStandard: {47, 23},
	SizeHuge:     {95, 47},
	SizeMax:      {255, 255},
}

// ParseSizePreset validates a preset name. An empty name is not a preset.
func ParseSizePreset(name string) (SizePreset, error) {
	p := SizePreset(name)
	if _, ok := presetDims[p]; !ok {
		return "", fmt.Errorf("%w: unknown size preset %q (tiny, small, standard, huge, max)", ErrInvalid, name)
	}
	return p, nil
}

// ApplySizePreset overrides the map dimensions with the preset's.
func ApplySizePreset(cfg *Config, preset SizePreset) {
	dims, ok := presetDims[preset]
	if !ok {
		return
	}
	cfg.Map.Width = dims[0]
	cfg.Map.Height = dims[1]
}

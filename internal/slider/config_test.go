package slider

import (
	"errors"
	"testing"

	"github.com/dshills/slidekit/internal/track"
)

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Mode:         ModeRange,
			MinValue:     0,
			MaxValue:     100,
			Step:         1,
			DefaultValue: track.Range{Min: 20, Max: 80},
			OnChange:     func(Value) {},
			TrackRect:    func() track.Rect { return track.Rect{Width: 100} },
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"missing mode", func(c *Config) { c.Mode = ModeNone }, ErrInvalidMode},
		{"equal bounds", func(c *Config) { c.MaxValue = c.MinValue }, track.ErrInvalidBounds},
		{"inverted bounds", func(c *Config) { c.MinValue, c.MaxValue = 100, 0 }, track.ErrInvalidBounds},
		{"zero step", func(c *Config) { c.Step = 0 }, track.ErrInvalidStep},
		{"missing OnChange", func(c *Config) { c.OnChange = nil }, ErrMissingOnChange},
		{"missing TrackRect", func(c *Config) { c.TrackRect = nil }, ErrMissingTrackRect},
		{"default below bounds", func(c *Config) { c.DefaultValue.Min = -5 }, ErrValueOutOfRange},
		{"default above bounds", func(c *Config) { c.DefaultValue.Max = 105 }, ErrValueOutOfRange},
		{"coincident handles", func(c *Config) { c.DefaultValue = track.Range{Min: 50, Max: 50} }, ErrValueOutOfRange},
		{"crossed handles", func(c *Config) { c.DefaultValue = track.Range{Min: 60, Max: 40} }, ErrValueOutOfRange},
		{"controlled value out of range", func(c *Config) { c.Value = &track.Range{Min: 0, Max: 200} }, ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			_, err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateSingleIgnoresMin(t *testing.T) {
	// Single mode synthesizes Min from the floor, so a garbage Min in
	// the default value must not fail validation.
	cfg := Config{
		Mode:         ModeSingle,
		MinValue:     0,
		MaxValue:     10,
		Step:         1,
		DefaultValue: track.Range{Min: 9999, Max: 5},
		OnChange:     func(Value) {},
		TrackRect:    func() track.Rect { return track.Rect{Width: 10} },
	}
	if _, err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestModeAndHandleStrings(t *testing.T) {
	if ModeSingle.String() != "single" || ModeRange.String() != "range" || ModeNone.String() != "none" {
		t.Error("Mode.String() mismatch")
	}
	if HandleMin.String() != "min" || HandleMax.String() != "max" || HandleNone.String() != "none" {
		t.Error("Handle.String() mismatch")
	}
	if StateIdle.String() != "idle" || StateDragging.String() != "dragging" {
		t.Error("State.String() mismatch")
	}
}

func TestValueScalar(t *testing.T) {
	v := Value{Mode: ModeSingle, Min: 0, Max: 7}
	if v.Scalar() != 7 {
		t.Errorf("Scalar() = %v, want 7", v.Scalar())
	}
	if r := v.Range(); r.Min != 0 || r.Max != 7 {
		t.Errorf("Range() = %+v", r)
	}
}

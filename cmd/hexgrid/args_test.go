package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		q, r     string
		expected hex.Coord
		wantErr  bool
	}{
		{"0", "0", hex.NewCoord(0, 0), false},
		{"255", " 7", hex.NewCoord(255, 7), false},
		{"256", "0", hex.Coord{}, true},
		{"-1", "0", hex.Coord{}, true},
		{"a", "0", hex.Coord{}, true},
		{"0", "", hex.Coord{}, true},
	}

	for _, tc := range tests {
		got, err := parseCoord(tc.q, tc.r)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseCoord(%q, %q) error = %v, wantErr %v", tc.q, tc.r, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errBadArg) {
			t.Errorf("parseCoord(%q, %q) error = %v, expected %v", tc.q, tc.r, err, errBadArg)
		}
		if got != tc.expected {
			t.Errorf("parseCoord(%q, %q) = %v, expected %v", tc.q, tc.r, got, tc.expected)
		}
	}
}

func TestParseCoordPair(t *testing.T) {
	c, err := parseCoordPair("10,5")
	if err != nil || c != hex.NewCoord(10, 5) {
		t.Errorf("parseCoordPair(10,5) = %v, %v, expected (10,5)", c, err)
	}

	for _, s := range []string{"10", "10;5", "10,x", ""} {
		if _, err := parseCoordPair(s); !errors.Is(err, errBadArg) {
			t.Errorf("parseCoordPair(%q) error = %v, expected %v", s, err, errBadArg)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	o, err := parseOrientation("-128", "127")
	if err != nil || o != hex.NewAxial(-128, 127) {
		t.Errorf("parseOrientation(-128, 127) = %v, %v", o, err)
	}
	if _, err := parseOrientation("128", "0"); err == nil {
		t.Error("parseOrientation(128, 0) should fail")
	}
}

func TestParseFloat32(t *testing.T) {
	v, err := parseFloat32("x", "1.5")
	if err != nil || v != 1.5 {
		t.Errorf("parseFloat32(1.5) = %v, %v", v, err)
	}
	if _, err := parseFloat32("x", "one"); err == nil {
		t.Error("parseFloat32(one) should fail")
	}
}

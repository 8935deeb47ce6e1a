package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hexgrid/internal/hex"
)

var (
	errBadArg  = errors.New("invalid argument")
	errOffGrid = errors.New("off the grid")
)

func parseUint8(name, s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w %s=%q: want an integer in 0..255", errBadArg, name, s)
	}
	return uint8(v), nil
}

func parseInt8(name, s string) (int8, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w %s=%q: want an integer in -128..127", errBadArg, name, s)
	}
	return int8(v), nil
}

func parseFloat32(name, s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("%w %s=%q: want a number", errBadArg, name, s)
	}
	return float32(v), nil
}

// parseCoord reads a coordinate from two positional arguments.
func parseCoord(qs, rs string) (hex.Coord, error) {
	q, err := parseUint8("q", qs)
	if err != nil {
		return hex.Coord{}, err
	}
	r, err := parseUint8("r", rs)
	if err != nil {
		return hex.Coord{}, err
	}
	return hex.NewCoord(q, r), nil
}

// parseCoordPair reads a coordinate written as "q,r".
func parseCoordPair(s string) (hex.Coord, error) {
	qs, rs, ok := strings.Cut(s, ",")
	if !ok {
		return hex.Coord{}, fmt.Errorf("%w %q: want q,r", errBadArg, s)
	}
	return parseCoord(qs, rs)
}

// parseOrientation reads a displacement from two positional arguments.
func parseOrientation(qs, rs string) (hex.Orientation, error) {
	q, err := parseInt8("dq", qs)
	if err != nil {
		return hex.Orientation{}, err
	}
	r, err := parseInt8("dr", rs)
	if err != nil {
		return hex.Orientation{}, err
	}
	return hex.NewAxial(q, r), nil
}

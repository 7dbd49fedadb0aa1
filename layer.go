package sttt

import "fmt"

// LayerRole is the closed set of roles a drawable square plays in the board
// hierarchy.
type LayerRole uint8

const (
	RoleSquare     LayerRole = iota // plain backing square (board background)
	RoleCell                        // playable cell face
	RoleHover                       // hover highlight, one per skin
	RoleGameActive                  // active-board border
)

// String returns the role name used in diagnostics.
func (r LayerRole) String() string {
	switch r {
	case RoleSquare:
		return "square"
	case RoleCell:
		return "cell"
	case RoleHover:
		return "hover"
	case RoleGameActive:
		return "game-active"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Skin selects the hover highlight variant. Hover layers come in pairs, one
// used while their board is the active board and one otherwise.
type Skin uint8

const (
	SkinNone     Skin = iota // layer has a single variant
	SkinActive               // shown for regions on the active board
	SkinInactive             // shown for regions on any other board
)

// String returns the skin name used in diagnostics.
func (s Skin) String() string {
	switch s {
	case SkinNone:
		return "none"
	case SkinActive:
		return "active"
	case SkinInactive:
		return "inactive"
	default:
		return fmt.Sprintf("skin(%d)", uint8(s))
	}
}

// Layer is a solid-color square attached to a region. The core only ever
// flips Visible; the presentation layer reads Bounds, Color, Alpha and
// ZIndex to draw it.
type Layer struct {
	Name   string
	Role   LayerRole
	Skin   Skin
	Bounds Rect
	Color  Color
	ZIndex int

	Visible bool
	Alpha   float64

	fade *TweenGroup
}

// NewLayer creates a visible, opaque layer.
func NewLayer(name string, role LayerRole, skin Skin, bounds Rect, color Color) *Layer {
	return &Layer{
		Name:    name,
		Role:    role,
		Skin:    skin,
		Bounds:  bounds,
		Color:   color,
		Visible: true,
		Alpha:   1,
	}
}

// NewHighlight creates a hidden layer. Hover and active-border layers start
// hidden and are only revealed by transitions.
func NewHighlight(name string, role LayerRole, skin Skin, bounds Rect, color Color) *Layer {
	l := NewLayer(name, role, skin, bounds, color)
	l.Visible = false
	return l
}

// Fading reports whether the layer has a fade in progress.
func (l *Layer) Fading() bool {
	return l.fade != nil && !l.fade.Done
}

// Package input defines the raw input event model consumed by the slider
// core.
//
// The package is deliberately free of any terminal or platform dependency:
// frontends translate their native events (tcell, web, test fixtures) into
// these types and feed them to the controller.
//
// # Event Types
//
// PointerEvent covers mouse and touch input. A touch point is reported as
// ButtonTouch with the same press/drag/release action vocabulary as a mouse
// button:
//
//	ev := input.NewPointerEvent(input.Position{X: 120, Y: 8},
//	    input.ButtonLeft, input.ActionPress, input.ModNone)
//
// KeyEvent covers keyboard input for the focused handle. Only the arrow
// keys are meaningful to the slider; everything else is ignored by the
// controller:
//
//	ev := input.NewKeyEvent(input.KeyRight, input.ActionPress, input.ModNone)
//
// # Coordinates
//
// Position carries float64 coordinates so sub-cell and sub-pixel sources
// both fit. Distance is Euclidean because handle targeting picks the
// nearest handle by straight-line distance.
package input

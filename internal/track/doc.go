// Package track implements the pure value/position transformations for the
// slider.
//
// Three coordinate spaces are involved:
//
//   - Domain values: numbers within the configured [MinValue, MaxValue]
//     bounds.
//   - Percentages: values normalized to [0, 1] against the bounds.
//   - Positions: coordinates relative to the track rectangle's top-left
//     corner. The track is horizontal, so Y is always 0.
//
// All functions are stateless and side-effect free. Geometry is passed in
// as a Rect on every call; callers must re-query the rectangle per
// interaction rather than caching it, since layout can change between
// gestures.
//
// A Scale is validated at construction so no transformation can divide by
// a zero span or produce NaN/Inf from degenerate bounds.
package track

// Package term is the tcell frontend for the slider.
//
// It owns a tcell.Screen, translates terminal mouse and key events into
// the slider's input model, and renders the track, handles, and labels
// from controller output. The slider core never sees tcell types; all
// translation is done here so the core stays platform-free.
//
// Terminals do not deliver key release events, so the adapter synthesizes
// a release after every arrow press to drive the controller's completion
// bookkeeping.
package term

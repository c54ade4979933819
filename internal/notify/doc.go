// Package notify provides a small synchronous observer registry for slider
// value notifications.
//
// The host's change callback remains the primary delivery path; Notifier
// exists so additional observers (status lines, recorders, tests) can watch
// committed and completed values without threading extra callbacks through
// configuration.
//
// Delivery is synchronous and in subscription order, matching the slider's
// run-to-completion event model. Handlers must not block.
//
//	n := notify.NewNotifier()
//	sub := n.Subscribe(func(event any) {
//	    // inspect event
//	})
//	defer sub.Cancel()
package notify

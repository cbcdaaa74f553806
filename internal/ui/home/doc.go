// Package home renders the home screen from a read-only view model.
//
// The screen owns no state of its own. It draws whatever HomeState it is
// handed and reports Error axes through a notify callback, the terminal
// equivalent of a snackbar.
//
// # Thread Safety
//
// Model is designed for single-threaded use within the bubbletea event loop.
// State changes reach it as messages, never through shared fields.
package home

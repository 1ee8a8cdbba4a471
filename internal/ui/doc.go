// Package ui contains the Bubble Tea program that powers the console window.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own input, rendering, dialogs, and the background
// picker.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Messages with a
//     registered handler (key presses, resizes, command results, file watch
//     events) are routed through a typed handler registry; everything else is
//     forwarded to the active widget (the file picker while it is open, the
//     input line otherwise).
//   - Key presses are interpreted per mode: dialogs swallow keys until they
//     are dismissed, the picker receives navigation keys, and the console
//     handles submission, completion, history and scrolling
//     (internal/ui/input.go).
//
// State ownership:
//   - The scrollback lives in internal/console, which classifies submitted
//     lines and renders pseudo-command answers. The model only re-renders the
//     buffer into the viewport when its version changes.
//   - Role colors come from internal/prefs through internal/theme; changing
//     the background or editing style.json rebuilds the palette.
//
// Shell commands:
//   - Real commands go through the internal/ui/command bus, which wraps them
//     in tea.Cmd values. Bubble Tea runs each one on its own goroutine and
//     delivers the command.Result back to Update, so the input line stays
//     responsive and outputs appear in completion order.
package ui

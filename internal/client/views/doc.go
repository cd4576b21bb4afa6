// Package views holds the screen state of the recipebook client. A view is
// mounted, receives user actions and exposes what the front-end renders; it
// has no knowledge of the terminal. Views move between each other only
// through a Navigator.
package views

// Package app wires the terminal screen, the document view, the jump
// controller, and the configured hint sources into a running
// application, and owns the main event loop.
package app

// Package term wraps tcell behind the small surface the application
// needs: screen lifecycle, cell output, and translation of terminal
// events into the editor's key and mouse types.
package term

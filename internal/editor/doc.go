// Package editor defines the host editor contract consumed by the
// jump controller, and provides View, an in-memory viewport-limited
// document implementing it. View backs both the demo binary and the
// controller tests; a real editor integration only needs to satisfy
// the Editor interface.
package editor

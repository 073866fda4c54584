// Package layout normalizes keystrokes produced on a non-Latin
// physical keyboard layout. A user whose keyboard is switched to the
// Russian ЙЦУКЕН layout still presses the same physical keys; mapping
// each Cyrillic rune to the QWERTY rune on the same key lets label
// selection work without switching layouts.
//
// The package also classifies keys as control versus content and
// detects which script a string is written in, for UI layers that
// want to adjust presentation.
package layout

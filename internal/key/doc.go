// Package key defines the keyboard event model shared by the input
// loop and the jump controller.
//
// A key is either a named key (Escape, Enter, Backspace, arrows and
// friends) or a rune key carrying a printable character. Bindings in
// configuration are written as specifications such as "g", "Escape",
// "Ctrl+G" or the Vim-style "<C-g>", parsed by Parse.
package key

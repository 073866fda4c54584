// Package search implements the incremental jump-search state
// machine. A Controller owns at most one Session at a time: activation
// attaches input listeners to the host editor, each keystroke either
// extends the search string or selects a match label, and the session
// ends on jump, cancel, or an outside click. Cleanup — clearing state
// and detaching listeners — is unconditional on every exit path.
package search

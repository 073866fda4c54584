// Package script runs user-provided Lua to locate jump candidates.
//
// A script defines a global scan(text) function returning an array of
// tables with 1-based rune fields index, length, and optional text.
// Each Scan executes in a fresh sandboxed Lua state: only the base,
// string, table, and math libraries are opened, and execution is
// bounded by a timeout so a runaway script cannot wedge the editor.
package script

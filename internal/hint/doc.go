// Package hint generalizes jump targets beyond literal search.
//
// A Source scans visible text for candidate positions: search matches,
// URLs, regex patterns, or script-provided locations. Assign turns a
// candidate list into labeled hints using the same prefix-free label
// scheme the incremental search uses, so every jump mode presents
// labels the same way.
package hint

// Package config loads and validates leapseek settings.
//
// Configuration is resolved in three layers: built-in defaults, an
// optional TOML or YAML file, and LEAPSEEK_-prefixed environment
// variables. Later layers win. A missing config file is not an error;
// a malformed one is. Watch provides debounced live reload via
// fsnotify.
package config

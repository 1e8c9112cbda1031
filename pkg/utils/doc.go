// Package utils provides utility packages for common operations.
//
//   - envvar: ${VAR} expansion in configuration values
//   - notify: formatted message display with symbols, colors, timing and a step spinner
//   - timer: execution time tracking for single and multi-stage operations
package utils

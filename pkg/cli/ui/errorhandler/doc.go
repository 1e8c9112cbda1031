// Package errorhandler runs cobra commands and turns their failures into a
// single normalized error and a process exit status.
package errorhandler

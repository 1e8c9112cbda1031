// Package fsutil provides filesystem path helpers.
package fsutil

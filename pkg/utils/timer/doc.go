// Package timer tracks elapsed time for a command and for the stage currently running.
package timer

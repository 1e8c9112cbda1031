// Package runner is the process-invocation boundary: every external program the
// CLI starts (git, npm, editors, OS openers) goes through a CommandRunner.
package runner

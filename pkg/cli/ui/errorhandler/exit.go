package errorhandler

// Process exit statuses.
const (
	// ExitSuccess is returned when the command reached its end.
	ExitSuccess = 0
	// ExitFailure is returned for every error, including recovered panics.
	ExitFailure = 1
)

// ExitCode maps the error returned by Executor.Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	return ExitFailure
}

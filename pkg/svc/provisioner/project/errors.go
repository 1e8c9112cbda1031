package projectprovisioner

import "errors"

// Validation errors. They are returned before any external program runs.
var (
	ErrNoProjectName = errors.New("no project name given")
	ErrInvalidName   = errors.New("invalid project name")
	ErrAlreadyExists = errors.New("target directory already exists")
)

// External tool errors. They abort the pipeline.
var (
	ErrCloneFailed   = errors.New("failed to clone the template repository")
	ErrInstallFailed = errors.New("failed to install dependencies")
)

// Optional step errors. They are reported as warnings and the pipeline continues.
var (
	ErrReinitFailed = errors.New("failed to initialize a new git repository")
	ErrOpenFailed   = errors.New("failed to open the project folder")
)

// IsValidationError reports whether err rejected the request itself.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoProjectName) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrAlreadyExists)
}

// IsExternalToolError reports whether err comes from a fatal clone or install failure.
func IsExternalToolError(err error) bool {
	return errors.Is(err, ErrCloneFailed) || errors.Is(err, ErrInstallFailed)
}

// IsOptionalStepError reports whether err comes from a step that only warns.
func IsOptionalStepError(err error) bool {
	return errors.Is(err, ErrReinitFailed) || errors.Is(err, ErrOpenFailed)
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Completed means the follow-up instructions were printed.
	Completed Outcome = iota
	// Aborted means a fatal error stopped the pipeline.
	Aborted
)

// OutcomeOf maps the error returned by Provisioner.Run to its terminal state.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return Completed
	}

	return Aborted
}

// String returns the outcome's name.
func (o Outcome) String() string {
	if o == Completed {
		return "completed"
	}

	return "aborted"
}

package projectprovisioner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ProjectRequest is the validated project to create.
type ProjectRequest struct {
	// Name is the directory name, as typed by the user.
	Name string
	// TargetPath is the absolute directory the template is cloned into.
	TargetPath string
}

// ValidateName rejects names that would not create a direct child of the working directory.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}

	return nil
}

// newProjectRequest builds the request for name under workDir and checks that
// nothing exists at the target path yet. The check is advisory: the directory
// can still appear before the clone runs.
func newProjectRequest(workDir, name string) (ProjectRequest, error) {
	err := ValidateName(name)
	if err != nil {
		return ProjectRequest{}, err
	}

	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return ProjectRequest{}, fmt.Errorf("resolve working directory: %w", err)
	}

	target := filepath.Join(absWorkDir, name)

	_, err = os.Lstat(target)
	if err == nil {
		return ProjectRequest{}, fmt.Errorf(
			"%w: the directory %q already exists in %s",
			ErrAlreadyExists,
			name,
			absWorkDir,
		)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return ProjectRequest{}, fmt.Errorf("check target directory: %w", err)
	}

	return ProjectRequest{Name: name, TargetPath: target}, nil
}

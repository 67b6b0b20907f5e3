package main

import "fmt"

// ArtifactError says which output file failed and at which step.
type ArtifactError struct {
	Artifact string // "presentation" or "handout"
	Step     string // "export" or "save"
	Path     string
	Err      error
}

func (e *ArtifactError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s %s: %v", e.Artifact, e.Step, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Artifact, e.Step, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

func artifactError(artifact, step, path string, err error) error {
	if err == nil {
		return nil
	}
	return &ArtifactError{Artifact: artifact, Step: step, Path: path, Err: err}
}

// WrapOperationError prefixes err with "failed to <operation>". A nil err stays nil.
func WrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

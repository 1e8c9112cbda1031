// Package svc provides the service layer that sits between the CLI commands and
// the external programs they drive.
//
// Subpackages:
//   - opener: the platform's "open this folder" command
//   - provisioner: project provisioning from a template repository
package svc

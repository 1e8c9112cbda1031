// Package provisioner provides provisioning services.
//
//   - project: clones a template, installs its dependencies and prepares it for use
package provisioner

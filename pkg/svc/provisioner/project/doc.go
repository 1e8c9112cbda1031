// Package projectprovisioner turns a project name into a ready-to-use local directory.
//
// The Provisioner runs a fixed, strictly sequential pipeline:
//
//  1. resolve the project name (argument or prompt)
//  2. check that the target directory is free
//  3. shallow-clone the template repository
//  4. install dependencies
//  5. optionally replace the template's git history with a fresh repository
//  6. optionally open the project in an editor or the OS file browser
//  7. print the follow-up command
//
// Steps 3 and 4 are fatal on failure; steps 5 and 6 only warn. Nothing is
// rolled back: a failed run leaves its partial directory behind.
package projectprovisioner

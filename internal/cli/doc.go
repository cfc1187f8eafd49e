// Package cli is responsible for parsing command-line arguments, merging them
// with settings files and the environment, and handling process-level
// concerns like exit codes.
package cli

// Package app contains the application lifecycle. It wires the configured
// logger and converter together and runs one console session, decoupled
// from the CLI entry point.
package app

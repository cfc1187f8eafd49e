// Package settings loads optional runtime settings from an HCL file, the
// process environment and a .env file. Command-line flags are layered on top
// by the cli package.
package settings

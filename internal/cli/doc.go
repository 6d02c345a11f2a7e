// Package cli turns the command line into an app.Config. It owns flag
// definitions, input validation and the exit codes reported for bad usage.
package cli

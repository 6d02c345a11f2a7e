// Package testutil holds helpers shared by the package tests: log capture,
// temporary model files and ready-made network models.
package testutil

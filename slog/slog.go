// Package slog provides log/slog decorators for the shorts service
// interfaces. Each decorator logs one line per call after delegating.
package slog

// Package sloghandler holds integration tests for handler.SlogHandler
// driving the concrete console sink through log/slog. The adapter itself
// lives in package handler.
package sloghandler

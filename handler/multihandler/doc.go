// Package multihandler holds integration tests for handler.MultiHandler
// fanning out to the concrete console and file sinks. The handler itself
// lives in package handler.
package multihandler

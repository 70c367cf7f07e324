package scrapedeck

import "github.com/scrapedeck/scrapedeck-go/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Requests
	GetProjectRequest   = types.GetProjectRequest
	RunProjectRequest   = types.RunProjectRequest
	ListProjectsRequest = types.ListProjectsRequest
	GetRunRequest       = types.GetRunRequest
	GetRunDataRequest   = types.GetRunDataRequest

	// Results
	Envelope  = types.Envelope
	Run       = types.Run
	RunStatus = types.RunStatus
)

// Run lifecycle statuses as reported by the service.
const (
	RunStatusInitialized = types.RunStatusInitialized
	RunStatusQueued      = types.RunStatusQueued
	RunStatusRunning     = types.RunStatusRunning
	RunStatusCancelled   = types.RunStatusCancelled
	RunStatusComplete    = types.RunStatusComplete
	RunStatusError       = types.RunStatusError
)

// Errors re-exported in errors.go

package types

// Per-call request structs. Zero values match the service defaults, so
// the empty struct is always a valid request. Every struct carries the
// DecodeJSON flag selecting the Envelope shape (raw text vs decoded
// structured value).

// GetProjectRequest carries the optional parameters of Client.GetProject.
type GetProjectRequest struct {
	// Offset paginates the project's run list embedded in the response.
	Offset int
	// IncludeOptions asks the service to embed the project's options
	// blob in the response.
	IncludeOptions bool
	DecodeJSON     bool
}

// RunProjectRequest carries the optional parameters of Client.RunProject.
//
// StartValueOverride is sent only when StartURL is non-empty; the remote
// API couples the two parameters. Setting StartValueOverride alone is a
// no-op on the wire.
type RunProjectRequest struct {
	StartURL           string
	StartTemplate      string
	StartValueOverride string
	// SendEmail asks the service to email when the run completes.
	SendEmail  bool
	DecodeJSON bool
}

// ListProjectsRequest carries the optional parameters of
// Client.ListProjects.
type ListProjectsRequest struct {
	Offset int
	// Limit is the page size. Zero means the service default of 20.
	// The documented valid range is 1-20, but values are passed through
	// unchecked; the service rejects out-of-range values itself.
	Limit          int
	IncludeOptions bool
	DecodeJSON     bool
}

// GetRunRequest carries the optional parameters of Client.GetRun,
// Client.CancelRun and Client.DeleteRun.
type GetRunRequest struct {
	DecodeJSON bool
}

// GetRunDataRequest carries the optional parameters of Client.GetRunData
// and Client.GetLastReadyData.
type GetRunDataRequest struct {
	// Format selects the payload encoding: "json" (default when empty)
	// or "csv".
	Format     string
	DecodeJSON bool
}

package domain

// RunStatus classifies the outcome of one pipeline run.
type RunStatus int

const (
	RunSuccess RunStatus = iota
	RunPartial           // at least one group failed but the run produced results
	RunFatal             // the run aborted before producing results
)

func (s RunStatus) String() string {
	switch s {
	case RunSuccess:
		return "success"
	case RunPartial:
		return "partial"
	case RunFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// GroupOutcome is the per-group result of the publish stage.
type GroupOutcome struct {
	TweetURL string
	Record   *SubmissionRecord // nil when publishing failed
	Err      error
}

// RunReport is the typed result of a run. The host decides exit-code
// semantics from Status instead of the process swallowing every error.
type RunReport struct {
	Status RunStatus
	Groups []GroupOutcome
	Err    error // set when Status == RunFatal
}

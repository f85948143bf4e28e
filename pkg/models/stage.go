package models

// Stage is an ingestion milestone for a source. Stages progress monotonically
// through the pipeline order; Failed absorbs from any prior stage.
type Stage string

const (
	StageCreated             Stage = "created"
	StageCrawlingStarted     Stage = "crawling_started"
	StageProcessingScheduled Stage = "processing_scheduled"
	StageChunksGenerated     Stage = "chunks_generated"
	StageSummaryGenerated    Stage = "summary_generated"
	StageCompleted           Stage = "completed"
	StageFailed              Stage = "failed"
)

// stageRank orders the happy-path stages for monotonicity checks.
var stageRank = map[Stage]int{
	StageCreated:             0,
	StageCrawlingStarted:     1,
	StageProcessingScheduled: 2,
	StageChunksGenerated:     3,
	StageSummaryGenerated:    4,
	StageCompleted:           5,
}

// Valid reports whether s is a known stage value.
func (s Stage) Valid() bool {
	if s == StageFailed {
		return true
	}
	_, ok := stageRank[s]
	return ok
}

// IsTerminal reports whether no further stage transitions are possible.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted || s == StageFailed
}

// CanAdvanceTo reports whether a transition from s to next is legal.
// Failed is reachable from any non-terminal stage; otherwise only forward
// movement along the pipeline order is allowed.
func (s Stage) CanAdvanceTo(next Stage) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StageFailed {
		return true
	}
	from, ok := stageRank[s]
	if !ok {
		return false
	}
	to, ok := stageRank[next]
	if !ok {
		return false
	}
	return to > from
}

package services

// Stage names a step of a folder conversion.
type Stage string

const (
	StageMetadata   Stage = "metadata"
	StageArchiving  Stage = "archiving"
	StageConverting Stage = "converting"
	StageCleanup    Stage = "cleanup"
	StageComplete   Stage = "complete"
	StageError      Stage = "error"
)

// Progress reports where a batch is in its run.
type Progress struct {
	Folder string
	Volume string
	Index  int // zero based position in the batch
	Total  int
	Stage  Stage
	Result *Result // set on StageComplete
	Err    error   // set on StageError
}

// Observer receives progress updates synchronously.
type Observer func(Progress)

func (o Observer) notify(p Progress) {
	if o != nil {
		o(p)
	}
}

package common

type RenderJobState uint

const (
	RenderJobStatePending RenderJobState = iota
	RenderJobStateRendering
	RenderJobStateDone
	RenderJobStateFailed
	RenderJobStateCancelled
)

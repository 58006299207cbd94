package engine

import "time"

// Stage describes a high-level phase of one diagnostic run.
type Stage string

const (
	// StageParse is the document ingest stage.
	StageParse Stage = "parse"
	// StageGeometry is the geometry file verification stage.
	StageGeometry Stage = "geometry"
	// StageKinetics is the kinetics header scan stage.
	StageKinetics Stage = "kinetics"
	// StageReport is the report assembly stage.
	StageReport Stage = "report"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being diagnosed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished.
	StatusDone Status = "done"
	// StatusError indicates the finished run carries error findings.
	StatusError Status = "error"
)

// Event reports batch progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Errors  int
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

type nopSink struct{}

func (nopSink) OnEvent(Event) {}

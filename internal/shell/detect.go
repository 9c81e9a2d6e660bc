package shell

import (
	"sort"

	"github.com/venvterm/venvterm/internal/logging"
)

// Detection source tags recorded into Telemetry.
const (
	SourceSettings     = "settings"
	SourceEnvironment  = "environment"
	SourceProcess      = "process"
	SourceTerminalName = "terminalName"
	SourceDefault      = "default"
)

// Detector priorities. Higher values are consulted first.
const (
	PriorityTerminalName = 0
	PriorityProcess      = 1
	PriorityEnvironment  = 2
	PrioritySettings     = 3
)

// Terminal is the minimal handle a detector needs from a host terminal.
type Terminal interface {
	// Name returns the terminal's display name, usually the shell path
	// or executable name it was created with.
	Name() string
}

// Detector is a single shell identification strategy.
type Detector interface {
	// Name returns the detection source tag for telemetry.
	Name() string
	// Priority orders detectors within a chain; higher runs first.
	Priority() int
	// Identify inspects one signal and returns the shell it implies,
	// or Unknown when the signal is absent or inconclusive.
	Identify(telemetry *Telemetry, terminal Terminal) Type
}

// Chain asks an ordered set of detectors to identify a terminal's shell.
// The first detector returning something other than Unknown wins.
type Chain struct {
	detectors []Detector
	log       logging.Logger
}

// NewChain builds a detector chain. Detectors are sorted once, highest
// priority first; registration order breaks ties.
func NewChain(log logging.Logger, detectors ...Detector) *Chain {
	if log == nil {
		log = logging.Nop()
	}
	sorted := make([]Detector, len(detectors))
	copy(sorted, detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &Chain{detectors: sorted, log: log}
}

// Identify runs the detector chain against a terminal handle. The winning
// detector's source tag is recorded into telemetry exactly once; when no
// detector resolves the shell, the source is "default" and Unknown is
// returned. A nil terminal is not an error, detectors that need one simply
// pass.
func (c *Chain) Identify(telemetry *Telemetry, terminal Terminal) Type {
	for _, d := range c.detectors {
		identified := d.Identify(telemetry, terminal)
		if identified == "" || identified == Unknown {
			continue
		}
		telemetry.record(d.Name())
		c.log.Debug("shell identified",
			"source", d.Name(),
			"shell", identified.String())
		return identified
	}

	telemetry.record(SourceDefault)
	c.log.Debug("shell identification failed, no detector resolved a shell")
	return Unknown
}

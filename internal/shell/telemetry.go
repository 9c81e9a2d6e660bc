package shell

// Telemetry accumulates diagnostic properties for a single shell
// identification pass. It is passed by pointer through the detector chain
// and written at most once.
type Telemetry struct {
	// ShellIdentificationSource is the source tag of the detector that
	// resolved the shell ("settings", "environment", "process",
	// "terminalName"), or "default" when nothing resolved it.
	ShellIdentificationSource string
}

// record stores the winning detection source, first writer wins.
func (t *Telemetry) record(source string) {
	if t == nil {
		return
	}
	if t.ShellIdentificationSource == "" {
		t.ShellIdentificationSource = source
	}
}

package terminal

// Pty is the master side of a pseudo-terminal.
type Pty interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
	Resize(cols, rows uint16) error
}

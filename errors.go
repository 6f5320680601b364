package pastel

import "fmt"

// DecodeError reports a path that could not be read or decoded as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PaletteError reports that too few distinct colors could be extracted.
type PaletteError struct {
	Count int
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("palette has %d colors, need at least %d", e.Count, MinColors)
}

// TerminalSetupError reports a failure acquiring or releasing the terminal.
type TerminalSetupError struct {
	Op  string
	Err error
}

func (e *TerminalSetupError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalSetupError) Unwrap() error {
	return e.Err
}

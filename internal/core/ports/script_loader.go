package ports

// ScriptLoader reads the lines of an rc file or a sourced file.
type ScriptLoader interface {
	// Lines returns the file's lines without line terminators.
	Lines(path string) ([]string, error)
}

package ports

// PromptRenderer builds the prompt shown before each read.
type PromptRenderer interface {
	Render() string
}

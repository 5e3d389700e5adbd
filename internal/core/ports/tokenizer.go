package ports

import "github.com/AntonioJCosta/kzsh/internal/core/domain/command"

/*
Tokenizer defines the contract for splitting a raw line into an argument
vector.
*/
type Tokenizer interface {
	Tokenize(line string) command.Command
}

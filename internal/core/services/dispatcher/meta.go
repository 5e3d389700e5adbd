package dispatcher

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/core/domain/command"
	"github.com/AntonioJCosta/kzsh/internal/core/domain/history"
)

// metaCommand is matched on the literal first token after alias
// resolution. A match with the wrong arity is consumed without output,
// unless passThrough lets it reach the builtins and the launcher.
type metaCommand struct {
	name        string
	usage       string
	about       string
	arity       func(argc int) bool
	passThrough bool
	run         func(s *service, cmd command.Command) int
}

// metaCommands are checked in this order.
var metaCommands = []metaCommand{
	{name: "history", usage: "history", about: "list the session history", arity: exactly(1), run: (*service).metaHistory},
	{name: "export", usage: "export NAME=VALUE", about: "set an environment variable", arity: exactly(2), run: (*service).metaExport},
	{name: "unset", usage: "unset NAME", about: "remove an environment variable", arity: exactly(2), run: (*service).metaUnset},
	{name: "env", usage: "env", about: "list environment variables", arity: exactly(1), passThrough: true, run: (*service).metaEnv},
	{name: "alias", usage: "alias [NAME VALUE]", about: "define an alias, then list all aliases", arity: anyArity, run: (*service).metaAlias},
	{name: "unalias", usage: "unalias NAME", about: "remove an alias", arity: exactly(2), run: (*service).metaUnalias},
}

func exactly(n int) func(int) bool {
	return func(argc int) bool { return argc == n }
}

func anyArity(int) bool { return true }

func isMetaCommand(name string) bool {
	return slices.ContainsFunc(metaCommands, func(m metaCommand) bool { return m.name == name })
}

func (s *service) runMeta(cmd command.Command) (int, bool) {
	for _, m := range metaCommands {
		if m.name != cmd.Name() {
			continue
		}
		if m.arity(cmd.Argc()) {
			return m.run(s, cmd), true
		}
		if m.passThrough {
			return 0, false
		}
		s.logger.Printf("ignoring %s with %d arguments", m.name, cmd.Argc()-1)
		return 0, true
	}
	return 0, false
}

func (s *service) metaHistory(command.Command) int {
	for i, line := range s.history.All() {
		fmt.Fprintln(s.stdout, history.Entry{Index: i, Line: line})
	}
	return 0
}

// metaExport without "=" is accepted and does nothing.
func (s *service) metaExport(cmd command.Command) int {
	name, value, ok := strings.Cut(cmd.Arg(1), "=")
	if !ok {
		return 0
	}
	if err := s.env.Setenv(name, value); err != nil {
		fmt.Fprintf(s.stderr, "export: %s: %v\n", cmd.Arg(1), err)
		return 1
	}
	return 0
}

func (s *service) metaUnset(cmd command.Command) int {
	if err := s.env.Unsetenv(cmd.Arg(1)); err != nil {
		fmt.Fprintf(s.stderr, "unset: %s: %v\n", cmd.Arg(1), err)
		return 1
	}
	return 0
}

func (s *service) metaEnv(command.Command) int {
	vars := s.env.Environ()
	slices.Sort(vars)
	for _, kv := range vars {
		fmt.Fprintln(s.stdout, kv)
	}
	return 0
}

func (s *service) metaAlias(cmd command.Command) int {
	if cmd.Argc() == 3 {
		if !s.aliases.Set(cmd.Arg(1), cmd.Arg(2)) {
			s.logger.Printf("alias table full, dropped %q", cmd.Arg(1))
		}
	}
	for name, expansion := range s.aliases.All() {
		fmt.Fprintf(s.stdout, "alias %s='%s'\n", name, expansion)
	}
	return 0
}

func (s *service) metaUnalias(cmd command.Command) int {
	s.aliases.Unset(cmd.Arg(1))
	return 0
}

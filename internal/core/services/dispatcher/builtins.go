package dispatcher

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/fsutil"
	"github.com/olekukonko/tablewriter"
	"github.com/pborman/getopt/v2"
)

// builtin runs inside the shell process. The error is reserved for
// *ExitRequest.
type builtin struct {
	usage string
	about string
	run   func(s *service, argv []string) (int, error)
}

// builtins is populated once by init and never modified afterwards.
var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"echo":    {usage: "echo [-n] [-e] [ARG...]", about: "print arguments", run: simple((*service).echo)},
		"true":    {usage: "true", about: "return success", run: simple(func(*service, []string) int { return 0 })},
		"false":   {usage: "false", about: "return failure", run: simple(func(*service, []string) int { return 1 })},
		"cd":      {usage: "cd [DIR|-]", about: "change the working directory", run: simple((*service).cd)},
		"pwd":     {usage: "pwd", about: "print the working directory", run: simple((*service).pwd)},
		"source":  {usage: "source FILE", about: "evaluate the lines of FILE", run: (*service).source},
		".":       {usage: ". FILE", about: "same as source", run: (*service).source},
		"exit":    {usage: "exit [CODE]", about: "leave the shell", run: exit},
		"help":    {usage: "help", about: "show this table", run: simple((*service).help)},
		"version": {usage: "version", about: "print the version banner", run: simple((*service).version)},
		"type":    {usage: "type NAME...", about: "describe how NAME is resolved", run: simple((*service).typeOf)},
	}
}

func simple(f func(s *service, argv []string) int) func(*service, []string) (int, error) {
	return func(s *service, argv []string) (int, error) {
		return f(s, argv), nil
	}
}

func (s *service) echo(argv []string) int {
	opts := getopt.New()
	noNewline := opts.Bool('n', "do not print the trailing newline")
	escapes := opts.Bool('e', "interpret backslash escapes")

	args := argv[1:]
	if err := opts.Getopt(argv, nil); err == nil {
		args = opts.Args()
	} else {
		// Unknown flags are printed literally.
		*noNewline, *escapes = false, false
	}

	out := strings.Join(args, " ")
	if *escapes {
		var stop bool
		out, stop = expandEscapes(out)
		if stop {
			*noNewline = true
		}
	}
	if !*noNewline {
		out += "\n"
	}
	fmt.Fprint(s.stdout, out)
	return 0
}

func (s *service) cd(argv []string) int {
	if len(argv) > 2 {
		fmt.Fprintln(s.stderr, "cd: too many arguments")
		return 1
	}

	home := s.env.Getenv("HOME")
	dir := home
	if len(argv) == 2 {
		dir = fsutil.ExpandHome(argv[1], home)
	}
	printDir := false
	if dir == "-" {
		dir = s.env.Getenv("OLDPWD")
		if dir == "" {
			fmt.Fprintln(s.stderr, "cd: OLDPWD not set")
			return 1
		}
		printDir = true
	}
	if dir == "" {
		fmt.Fprintln(s.stderr, "cd: HOME not set")
		return 1
	}

	previous, err := s.getwd()
	if err != nil {
		previous = s.env.Getenv("PWD")
	}
	if err := s.chdir(dir); err != nil {
		fmt.Fprintf(s.stderr, "cd: %s: %v\n", dir, launchReason(err))
		return 1
	}
	current, err := s.getwd()
	if err != nil {
		current = dir
	}
	if previous != "" {
		_ = s.env.Setenv("OLDPWD", previous)
	}
	_ = s.env.Setenv("PWD", current)
	if printDir {
		fmt.Fprintln(s.stdout, current)
	}
	return 0
}

func (s *service) pwd([]string) int {
	dir, err := s.getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "pwd: %v\n", err)
		return 1
	}
	fmt.Fprintln(s.stdout, dir)
	return 0
}

func (s *service) source(argv []string) (int, error) {
	if len(argv) < 2 {
		fmt.Fprintf(s.stderr, "%s: filename argument required\n", argv[0])
		return 2, nil
	}
	return s.Source(fsutil.ExpandHome(argv[1], s.env.Getenv("HOME")))
}

// exit ignores a non-numeric code and exits with 0.
func exit(_ *service, argv []string) (int, error) {
	code := 0
	if len(argv) > 1 {
		if n, err := strconv.Atoi(argv[1]); err == nil {
			code = n
		}
	}
	return code, &ExitRequest{Code: code}
}

func (s *service) help([]string) int {
	table := tablewriter.NewWriter(s.stdout)
	table.SetHeader([]string{"Command", "Kind", "Description"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, m := range metaCommands {
		table.Append([]string{m.usage, "meta", m.about})
	}
	for _, name := range slices.Sorted(maps.Keys(builtins)) {
		b := builtins[name]
		table.Append([]string{b.usage, "builtin", b.about})
	}
	table.Render()
	fmt.Fprintln(s.stdout, "Anything else runs as an external program found on PATH.")
	return 0
}

func (s *service) version([]string) int {
	fmt.Fprintln(s.stdout, s.banner)
	return 0
}

func (s *service) typeOf(argv []string) int {
	status := 0
	for _, name := range argv[1:] {
		if expansion, ok := s.aliases.Lookup(name); ok {
			fmt.Fprintf(s.stdout, "%s is aliased to `%s'\n", name, expansion)
			continue
		}
		if _, ok := builtins[name]; ok || isMetaCommand(name) {
			fmt.Fprintf(s.stdout, "%s is a shell builtin\n", name)
			continue
		}
		path, err := s.launcher.LookPath(name)
		if err != nil {
			fmt.Fprintf(s.stderr, "type: %s: not found\n", name)
			status = 1
			continue
		}
		fmt.Fprintf(s.stdout, "%s is %s\n", name, path)
	}
	return status
}

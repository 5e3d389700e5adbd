package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonioJCosta/kzsh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/kzsh/internal/adapters/osenv"
	"github.com/AntonioJCosta/kzsh/internal/adapters/terminal"
	"github.com/AntonioJCosta/kzsh/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/AntonioJCosta/kzsh/internal/core/services/dispatcher"
	"github.com/AntonioJCosta/kzsh/internal/core/services/prompt"
	"github.com/AntonioJCosta/kzsh/internal/fsutil"
	"github.com/AntonioJCosta/kzsh/internal/handlers/repl"
	"github.com/AntonioJCosta/kzsh/internal/handlers/ui"
	"github.com/AntonioJCosta/kzsh/internal/logutil"
	"github.com/AntonioJCosta/kzsh/internal/repositories/aliastable"
	"github.com/AntonioJCosta/kzsh/internal/repositories/config"
	"github.com/AntonioJCosta/kzsh/internal/repositories/history"
	"github.com/AntonioJCosta/kzsh/internal/repositories/script"
	"github.com/spf13/afero"
)

const (
	// EnvVersion is exported at startup for tools that detect the shell.
	EnvVersion = "KSH_VERSION"

	historyLockTimeout = time.Second
)

var logger = logutil.GetLogger("[cli] ")

func runShell(ctx context.Context, info BuildInfo, streams Streams, opts Options) int {
	if ctx == nil {
		ctx = context.Background()
	}
	if streams.In == nil {
		streams.In = os.Stdin
	}
	palette := ui.NewPalette(ui.ColorEnabled(ui.ModeAuto, fdOf(streams.Err)))

	if opts.LogFile != "" {
		closer, err := logutil.SetOutputFile(opts.LogFile)
		if err != nil {
			fmt.Fprintf(streams.Err, "%s %v\n", palette.Warning("kzsh:"), err)
		} else {
			defer closer.Close()
		}
	}

	env := osenv.NewOSEnvironment()
	if err := env.Setenv(EnvVersion, info.Version); err != nil {
		logger.Printf("export %s: %v", EnvVersion, err)
	}

	fsys := afero.NewOsFs()
	cfg := loadConfig(fsys, configPath(opts.ConfigPath, env), streams.Err)
	home := env.Getenv("HOME")

	aliases := aliastable.NewAliasTable(cfg.AliasCapacity)
	if n := aliastable.Seed(aliases, cfg.PredefinedAliases()); n < len(cfg.Aliases) {
		logger.Printf("seeded %d of %d predefined aliases", n, len(cfg.Aliases))
	}

	hist, closeHistory := openHistory(cfg, home, streams.Err, palette)
	defer closeHistory()

	eval := dispatcher.NewService(dispatcher.Dependencies{
		Tokenizer: tokenizer.NewWordTokenizer(cfg.MaxLineBytes, cfg.MaxArgs),
		Aliases:   aliases,
		History:   hist,
		Env:       env,
		Launcher:  oscommand.NewOSProcessLauncherWithIO(env, streams.In, streams.Out, streams.Err),
		Scripts:   script.NewFileLoader(fsys),
	}, dispatcher.Options{
		Stdout:           streams.Out,
		Stderr:           streams.Err,
		Banner:           info.Banner(),
		SourceDepthLimit: cfg.SourceDepthLimit,
		Logger:           logutil.GetLogger("[dispatcher] "),
	})

	// Single-shot mode evaluates one line and skips the rc file.
	if opts.SingleShot {
		status, err := eval.Eval(opts.Command)
		if req, ok := dispatcher.AsExitRequest(err); ok {
			return req.Code
		}
		return status
	}

	interactive := terminal.IsTerminal(streams.In)
	if interactive {
		fmt.Fprintln(streams.Out, info.Banner())
	}

	signals := make(chan os.Signal, 4)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	if !opts.NoRC {
		if code, exit := sourceRC(eval, fsys, cfg, home, streams.Out); exit {
			return code
		}
	}

	var reader ports.LineReader
	if interactive {
		reader = terminal.NewRawReader(streams.In, streams.Out, hist)
	} else {
		reader = terminal.NewPlainReader(streams.In)
	}
	renderer := prompt.NewService(env, cfg.Prompt, ui.ColorEnabled(cfg.Color, fdOf(streams.Out)))

	return repl.NewSession(reader, eval, renderer, signals, streams.Err).Run(ctx)
}

// openHistory builds the history log, backed by the bbolt store when one is
// configured. Failure to open the store leaves history in memory only.
func openHistory(cfg *config.Config, home string, stderr io.Writer, palette ui.Palette) (ports.HistoryLog, func()) {
	mem := history.NewRingLog(cfg.HistoryCapacity)
	if cfg.HistoryFile == "" {
		return mem, func() {}
	}

	path := fsutil.ExpandHome(cfg.HistoryFile, home)
	store, err := history.OpenStore(path, historyLockTimeout)
	if err != nil {
		if errors.Is(err, history.ErrStoreLocked) {
			fmt.Fprintf(stderr, "%s history is shared with another session; not saving this one\n", palette.Warning("kzsh:"))
		} else {
			fmt.Fprintf(stderr, "%s %v\n", palette.Warning("kzsh:"), err)
		}
		return mem, func() {}
	}

	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Printf("closing history store: %v", err)
		}
	}
	persistent, err := history.NewPersistentLog(mem, store, cfg.HistoryCapacity, logutil.GetLogger("[history] "))
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", palette.Warning("kzsh:"), err)
		closeStore()
		return mem, func() {}
	}
	return persistent, closeStore
}

// sourceRC evaluates the rc file when it exists. exit reports an exit
// request made by the file.
func sourceRC(eval ports.Evaluator, fsys afero.Fs, cfg *config.Config, home string, out io.Writer) (code int, exit bool) {
	path := script.RCPath(home, cfg.RCFile)
	if path == "" {
		return 0, false
	}
	if ok, err := afero.Exists(fsys, path); err != nil || !ok {
		return 0, false
	}
	fmt.Fprintf(out, "Loading %s...\n", cfg.RCFile)
	_, err := eval.Source(path)
	if req, ok := dispatcher.AsExitRequest(err); ok {
		return req.Code, true
	}
	return 0, false
}

func fdOf(w io.Writer) uintptr {
	if f, ok := w.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

package main

import (
	"context"
	"os"

	"github.com/AntonioJCosta/kzsh/internal/handlers/cli"
)

// Version and BuildDate are set at build time.
var (
	Version   = "dev"
	BuildDate = "unknown"
)

func main() {
	info := cli.BuildInfo{Version: Version, BuildDate: BuildDate}
	os.Exit(cli.Execute(context.Background(), info, cli.StdStreams(), os.Args[1:]))
}

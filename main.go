package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ff-vivek/promptbank/internal/cli"
	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/service"
	"github.com/ff-vivek/promptbank/internal/storage"
)

var version = "0.1.0"

func main() {
	var showVersion bool
	var dataDir string

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.StringVar(&dataDir, "dir", "", "Storage directory (default: $PROMPTBANK_DIR or ~/.promptbank)")
	flag.Parse()

	if showVersion {
		fmt.Printf("promptbank version %s\n", version)
		return
	}

	handler := errors.NewCLIHandler(os.Stderr)

	// The storage root is resolved once here and passed down explicitly;
	// nothing below main consults the environment for it.
	if dataDir == "" {
		resolved, err := storage.DefaultRoot()
		if err != nil {
			os.Exit(handler.Handle(err))
		}
		dataDir = resolved
	}

	svc, err := service.NewService(dataDir)
	if err != nil {
		os.Exit(handler.Handle(err))
	}

	if err := cli.NewCLI(svc).ExecuteCommand(flag.Args()); err != nil {
		os.Exit(handler.Handle(err))
	}
}

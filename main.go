package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"studylog/internal/cmd"
	"studylog/internal/config"
	"studylog/version"
)

func main() {
	// Load settings before parsing so AfterApply can merge them with flags
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	ctx := kong.Parse(&cli,
		kong.Name("studylog"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

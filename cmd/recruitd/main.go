// Command recruitd runs the recruitment platform API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/skillsenselab/recruitd/internal/app"
	"github.com/skillsenselab/recruitd/internal/config"
	"github.com/skillsenselab/recruitd/internal/version"
)

func main() {
	configFile := flag.String("config", "", "path to config.yml")
	envFile := flag.String("env", "", "path to .env file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("recruitd %s (commit %s, built %s)\n", version.Version, version.Commit, version.BuildTime)
		return
	}

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recruitd: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recruitd: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "recruitd: %v\n", err)
		os.Exit(1)
	}
}

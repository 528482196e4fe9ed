package main

import (
	"os"

	"github.com/courseplanner/planner/internal/bootstrap"
	"github.com/courseplanner/planner/internal/pkg/logger"
	"github.com/courseplanner/planner/internal/shell"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		// Details are logged inside LoadConfigAndSetupLogger
		os.Exit(1)
	}

	deps := bootstrap.BuildDependencies(cfg, lgr)
	sh := shell.NewShell(deps, os.Stdin, os.Stdout, cfg.Catalog.DataFile)

	if err := sh.Run(); err != nil {
		logger.Error().Err(err).Msg("Console session failed")
		os.Exit(1)
	}
	os.Exit(0)
}

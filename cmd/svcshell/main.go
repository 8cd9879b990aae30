package main

import (
	"os"

	"github.com/AntonioJCosta/svcshell/internal/adapters/demosource"
	"github.com/AntonioJCosta/svcshell/internal/adapters/surveyprompt"
	"github.com/AntonioJCosta/svcshell/internal/core/services/serviceconfig"
	"github.com/AntonioJCosta/svcshell/internal/handlers/cli"
	"github.com/AntonioJCosta/svcshell/internal/infra/logger"
	"github.com/AntonioJCosta/svcshell/internal/repositories/catalog"
	"github.com/AntonioJCosta/svcshell/internal/repositories/history"
)

// Version is set at build time
var Version = "dev"

func main() {
	log := logger.FromEnv()

	serviceCatalog := catalog.NewMemoryCatalog()
	definitions := demosource.NewDemoSource()
	prompter := surveyprompt.NewSurveyPrompter()

	configSvc := serviceconfig.NewService(serviceCatalog, definitions, prompter, log.Logger)
	rootCmd := cli.NewRootCommand(Version, configSvc, cli.RootDeps{
		Logger:            log,
		HistoryFileFinder: history.NewDefaultHistoryFileFinder(),
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

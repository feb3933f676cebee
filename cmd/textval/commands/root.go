package commands

import (
	"github.com/spf13/cobra"

	"github.com/mrled/suns/textval/internal/config"
	"github.com/mrled/suns/textval/internal/logger"
	"github.com/mrled/suns/textval/internal/model"
	"github.com/mrled/suns/textval/internal/repository"
	"github.com/mrled/suns/textval/internal/usecase/check"
)

// app carries state shared by all subcommands of one invocation
type app struct {
	flags   PersistenceFlags
	cfg     *config.Config
	service *check.Service
}

// NewRootCmd builds the textval command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "textval",
		Short:         "Textval runs small text and arithmetic checks",
		Long:          `A command-line tool for palindrome checks, addition, division and XML text extraction, with optional history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	addPersistenceFlags(rootCmd, &a.flags)

	rootCmd.AddGroup(&cobra.Group{ID: "checks", Title: "Checks:"})
	rootCmd.AddGroup(&cobra.Group{ID: "history", Title: "History:"})

	rootCmd.AddCommand(newPalindromeCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newDivideCmd(a))
	rootCmd.AddCommand(newXMLTextCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration, applies flag overrides, and builds the check service
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.ConfigPath)
	if err != nil {
		return err
	}

	if a.flags.FilePath != "" {
		cfg.History.File = a.flags.FilePath
	}
	if a.flags.DynamoTable != "" {
		cfg.History.DynamoTable = a.flags.DynamoTable
	}
	if a.flags.DynamoEndpoint != "" {
		cfg.History.DynamoEndpoint = a.flags.DynamoEndpoint
	}
	if a.flags.LogLevel != "" {
		cfg.Logging.Level = a.flags.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return ExitWithCode(ExitInvalidArgument, err)
	}
	a.cfg = cfg

	log := logger.NewLoggerTo(cmd.ErrOrStderr(), cfg.Logging)
	log = logger.WithExecutable(log, "textval")
	logger.SetDefault(log)

	// Without a configured store, checks are not recorded at all
	var repo model.CheckRepository
	if cfg.Repository().IsPersistent() {
		repo, err = repository.NewRepository(cmd.Context(), cfg.Repository())
		if err != nil {
			return err
		}
	}

	a.service = check.NewService(repo, log)
	return nil
}

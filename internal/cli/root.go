package cli

import (
	"os"

	"github.com/chronoconv/chronoconv/internal/branding"
	"github.com/chronoconv/chronoconv/internal/config"
	"github.com/chronoconv/chronoconv/internal/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// logger is set up from config before every command runs.
var logger logrus.FieldLogger = log.InitLogs(os.Stderr, "")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` converts values between a legacy millisecond instant and civil
dates, times, and date-times, using an explicit time zone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logger = log.InitLogs(cmd.ErrOrStderr(), config.Get(config.KeyLogLevel))
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

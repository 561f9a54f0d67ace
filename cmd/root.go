// Package cmd holds the namesh command line interface.
package cmd

import (
	"os"

	"github.com/nameshell/namesh/core"
	"github.com/nameshell/namesh/core/config"
	"github.com/nameshell/namesh/core/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "namesh",
	Short: "A small interactive shell with a renameable prompt and command aliases.",
	Long: `namesh reads one line at a time and either handles it as a builtin
directive (STOP, SETSHELLNAME, SETTERMINATOR, NEWNAME, READNEWNAMES,
LISTNEWNAMES, SAVENEWNAMES, HELP) or runs it as an external program,
resolving aliases first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fsys := afero.NewOsFs()
		cfg, err := config.LoadOrDefault(fsys, cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := core.Options{FS: fsys}
		if cfg.SessionLog != "" {
			logFd, err := fsys.OpenFile(cfg.SessionLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
			if err != nil {
				return err
			}
			defer logFd.Close()
			opts.Log = logger.NewJSONLinesLogRecorder(logFd).NewSession()
		}

		shell, err := core.NewShell(cfg, opts)
		if err != nil {
			return err
		}

		if commandLine != "" {
			return shell.RunLine(commandLine)
		}
		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}

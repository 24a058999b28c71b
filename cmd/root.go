package cmd

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/josephlewis42/gsh/commands"
	"github.com/josephlewis42/gsh/core/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	command string
	verbose bool

	// exitStatus is the status the process exits with once the root
	// command returns.
	exitStatus int
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(cfgPath)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gsh",
	Short: "A tiny interactive shell",
	Long: `gsh reads command lines, runs the builtins cd, help, exit and history
itself and launches everything else as a program, waiting for it to finish.
Previous lines can be recalled with the up and down arrow keys.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := log.New(ioutil.Discard, "[gsh] ", 0)
		if verbose {
			logger.SetOutput(cmd.ErrOrStderr())
		}

		shell, err := commands.NewShell(cfg, commands.Options{
			Stdin:  os.Stdin,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			Logger: logger,
		})
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("command") {
			exitStatus = shell.RunCommand(command)
			return nil
		}

		exitStatus = shell.Run()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitStatus)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultDir(), "config path")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "run a single command line and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdess-gv/Techgrounds-AI-playground-sub000/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "prompt-playground",
	Short: "Prompt-engineering exercise playground with MCP server",
	Long: `prompt-playground hosts prompt-engineering exercises and evaluates learner
submissions against each exercise's success criteria. Submissions are checked for
expected terminology, substance and structure; every criterion gets a verdict, a
feedback line and, when it fails, an improvement suggestion.

Exercises, evaluation and batch runs are also exposed via an MCP server.

When run without subcommands, it starts the MCP server (equivalent to 'prompt-playground serve').`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		envFile, _ := cmd.Flags().GetString("env-file")
		var envFiles []string
		if envFile != "" {
			envFiles = append(envFiles, envFile)
		}
		cfg, err := config.Load(envFiles...)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		settings = cfg
		return nil
	},
}

// settings holds the environment configuration loaded before each command runs.
var settings config.Config

// serveCmd is stored so the root command can delegate to it by default.
var serveCmd *cobra.Command

var (
	buildCommit = "unknown"
	buildDate   = "unknown"
)

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// SetBuildInfo sets the commit and build date for the version command.
func SetBuildInfo(commit, date string) {
	buildCommit = commit
	buildDate = date
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "prompt-playground version %s\n" .Version}}`)

	// Default to the serve command when invoked without arguments.
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stderr, "No subcommand specified. Defaulting to 'serve' (stdio transport).")
		fmt.Fprintln(os.Stderr, "For HTTP transport, use: prompt-playground serve --transport streamable-http")
		fmt.Fprintln(os.Stderr)
		if err := serveCmd.RunE(serveCmd, args); err != nil {
			slog.Error("serve failed", "error", err)
			os.Exit(1)
		}
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// stringSetting returns the flag value when the flag was set explicitly,
// the configured value otherwise.
func stringSetting(cmd *cobra.Command, flag, flagValue, configured string) string {
	if cmd.Flags().Changed(flag) || configured == "" {
		return flagValue
	}
	return configured
}

// catalogDir returns the external exercise packs directory in effect.
func catalogDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("catalog-dir")
	return stringSetting(cmd, "catalog-dir", dir, settings.CatalogDir)
}

func init() {
	serveCmd = newServeCmd()
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newEmbedCmd())

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("catalog-dir", "", "External exercise packs directory (or set PLAYGROUND_CATALOG_DIR)")
	rootCmd.PersistentFlags().String("env-file", "", "Environment file to load instead of .env")
}

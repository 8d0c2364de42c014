package cli

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/readnum/internal/prompt"
	"github.com/lacquerai/readnum/internal/style"
)

var (
	// Global flags
	cfgFile      string
	logLevel     string
	outputFormat string
	language     string
	quiet        bool
)

var outputFormats = []string{"text", "json", "yaml"}

// rootCmd asks for a number, reads one line and reports what was entered
var rootCmd = &cobra.Command{
	Use:   "readnum",
	Short: "readnum - ask for a number and report it",
	Long: `readnum prompts for a number, reads one line from standard input and
reports the base-10 integer that was entered.

Input that is not a 32-bit signed integer is reported as invalid and the
command still exits successfully. Failing to read a line at all, including
end of input before anything was typed, exits with status 1.`,
	Example: `
  readnum                      # Prompt and report in English
  echo 42 | readnum            # Read the number from a pipe
  readnum --lang pt            # Use the Portuguese messages
  readnum --output json        # Print the report as JSON`,
	Version:       getVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateSettings(); err != nil {
			return err
		}
		initLogging(cmd.ErrOrStderr())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrompt(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return fang.Execute(context.Background(), rootCmd, fang.WithColorSchemeFunc(func(lightDark lipgloss.LightDarkFunc) fang.ColorScheme {
		return fang.ColorScheme{
			Base:           style.PrimaryTextColor,
			Title:          style.AccentColor,
			Description:    style.PrimaryTextColor,
			Codeblock:      style.CodeColor,
			Program:        style.AccentColor,
			DimmedArgument: style.MutedColor,
			Comment:        style.MutedColor,
			Flag:           style.InfoColor,
			FlagDefault:    style.MutedColor,
			Command:        style.SuccessColor,
			QuotedString:   style.WarningColor,
			Argument:       style.PrimaryTextColor,
			Help:           style.InfoColor,
			Dash:           style.MutedColor,
			ErrorHeader:    [2]color.Color{style.ErrorColor, style.ErrorBgColor},
			ErrorDetails:   style.ErrorColor,
		}
	}))
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.readnum/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "disabled", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", prompt.DefaultLanguage, "message language (en, pt)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	// Bind flags to viper
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("lang", rootCmd.PersistentFlags().Lookup("lang"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(".readnum")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.readnum")
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("READNUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if !viper.GetBool("quiet") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// validateSettings rejects unknown output formats and languages before
// anything is written to the console.
func validateSettings() error {
	format := viper.GetString("output")
	valid := false
	for _, f := range outputFormats {
		if f == format {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported output format %q (available: %s)", format, strings.Join(outputFormats, ", "))
	}

	if _, err := prompt.MessagesFor(viper.GetString("lang")); err != nil {
		return err
	}

	return nil
}

// initLogging configures the global logger
func initLogging(w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch viper.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	// Logs never share stdout with the prompt or the report
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
}

// runPrompt runs one prompt, read and parse cycle and renders the report.
// A read failure is returned so the process exits non-zero; invalid input is
// reported and is not an error.
func runPrompt(cmd *cobra.Command) error {
	format := viper.GetString("output")
	msgs, err := prompt.MessagesFor(viper.GetString("lang"))
	if err != nil {
		return err
	}

	// Keep stdout parseable for the machine formats
	promptOut := cmd.OutOrStdout()
	if format != "text" {
		promptOut = cmd.ErrOrStderr()
	}

	session := &prompt.Session{
		Input:    cmd.InOrStdin(),
		Output:   promptOut,
		Messages: msgs,
	}

	ctx := log.Logger.WithContext(cmd.Context())
	report, err := session.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Reading number failed")
		return err
	}

	log.Info().
		Str("status", string(report.Status)).
		Str("reason", string(report.Reason)).
		Msg("Prompt completed")

	return renderReport(cmd.OutOrStdout(), format, report)
}

func renderReport(w io.Writer, format string, report prompt.Report) error {
	switch format {
	case "json":
		return style.PrintJSON(w, report)
	case "yaml":
		return style.PrintYAML(w, report)
	}

	out := style.NewWriter(w)
	if report.OK() {
		style.Success(out, report.Message)
	} else {
		style.Warning(out, report.Message)
	}
	return nil
}

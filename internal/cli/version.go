package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/readnum/internal/style"
)

// Build-time variables (set by goreleaser or build scripts)
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	BuiltBy   = "unknown"
	GoVersion = runtime.Version()
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for readnum, including build details.`,
	Example: `
  readnum version               # Show the version
  readnum version --output json # Show version info as JSON`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// VersionInfo represents version information
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Release   bool   `json:"release" yaml:"release"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func newVersionInfo() VersionInfo {
	version, release := normalizeVersion(Version)
	return VersionInfo{
		Version:   version,
		Release:   release,
		Commit:    Commit,
		Date:      Date,
		BuiltBy:   BuiltBy,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// normalizeVersion strips the v prefix from semantic versions. Only a
// semantic version without a prerelease part counts as a release; "dev" and
// other free-form values are returned unchanged.
func normalizeVersion(version string) (string, bool) {
	sv, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return version, false
	}
	return sv.String(), sv.Prerelease() == ""
}

func showVersion(w io.Writer) error {
	info := newVersionInfo()

	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, info)
	case "yaml":
		return style.PrintYAML(w, info)
	default:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	}
}

// getVersion returns the version string shown by --version
func getVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, go: %s)", Version, Commit, Date, GoVersion)
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chronoconv/chronoconv/internal/capability"
	"github.com/chronoconv/chronoconv/internal/config"
	"github.com/chronoconv/chronoconv/internal/timeconv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the chronoconv installation",
	Long:  `Check the config file, the configured time zone, and which converters are available.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		if !runConfigCheck(out) {
			failed++
		}
		if !runZoneCheck(out) {
			failed++
		}
		runConverterCheck(out)

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func runConfigCheck(out io.Writer) bool {
	fmt.Fprintln(out, "Config check:")
	path := config.FilePath()

	result, err := config.ValidateFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(out, "  [INFO] %s not found, using defaults\n", path)
	case err != nil:
		fmt.Fprintf(out, "  [FAIL] Cannot read %s: %v\n", path, err)
		return false
	case !result.Valid:
		fmt.Fprintf(out, "  [FAIL] %s has schema issues:\n", path)
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "         %s\n", issue)
		}
		return false
	default:
		fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
	}

	version := config.Current().SchemaVersion
	if err := config.CheckCompatible(version); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] schema version %s satisfies %s\n", version, config.SupportedSchema)
	return true
}

func runZoneCheck(out io.Writer) bool {
	fmt.Fprintln(out, "Zone check:")
	name := config.Current().Zone
	loc, err := config.ResolveZone(name)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] zone %q resolves to %s\n", name, loc)
	return true
}

func runConverterCheck(out io.Writer) {
	fmt.Fprintln(out, "Converter check:")
	if !capability.CivilCompiledIn() {
		fmt.Fprintln(out, "  [WARN] civil conversions compiled out (built with -tags nocivil)")
	}
	enabled := config.Current().CivilEnabled
	if !enabled {
		fmt.Fprintln(out, "  [WARN] civil conversions disabled by civil.enabled=false")
	}
	n := len(timeconv.ConvertersToRegister(capability.CivilTime(enabled)))
	fmt.Fprintf(out, "  [INFO] %d converter(s) available\n", n)
}

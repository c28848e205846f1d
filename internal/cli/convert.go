package cli

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/chronoconv/chronoconv/internal/timeconv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	convertFrom   string
	convertTo     string
	convertZone   string
	convertToday  string
	convertOutput string
)

func init() {
	kinds := strings.Join(lo.Map(timeconv.AllKinds(), func(k timeconv.Kind, _ int) string {
		return string(k)
	}), ", ")

	convertCmd.Flags().StringVar(&convertFrom, "from", string(timeconv.KindInstant), "Source kind: "+kinds)
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Target kind: "+kinds)
	convertCmd.Flags().StringVar(&convertZone, "zone", "", "Time zone (defaults to the configured zone)")
	convertCmd.Flags().StringVar(&convertToday, "today", "", "Reference date (YYYY-MM-DD) for time -> instant")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", outputText, "Output format: text, json, yaml")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

// conversionResult is the structured form of one conversion.
type conversionResult struct {
	From   timeconv.Kind `json:"from" yaml:"from"`
	To     timeconv.Kind `json:"to" yaml:"to"`
	Zone   string        `json:"zone" yaml:"zone"`
	Input  string        `json:"input" yaml:"input"`
	Output string        `json:"output" yaml:"output"`
}

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a value between an instant and a civil date, time, or date-time",
	Long: `Convert a single value. Instants are RFC 3339 timestamps or epoch milliseconds;
civil values use YYYY-MM-DD, HH:MM:SS, and YYYY-MM-DDTHH:MM:SS.
The literal "null" converts to null.

Converting a time of day to an instant attaches today's date in the chosen
zone, so the result changes from day to day. Use --today to pin the date.`,
	Example: `  chronoconv convert --to datetime --zone UTC 2014-03-01T00:00:00Z
  chronoconv convert --from date --to instant --zone Asia/Tokyo 2014-03-01
  chronoconv convert --from time --to instant --today 2014-03-01 12:30:00`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, ok := timeconv.ParseKind(convertFrom)
		if !ok {
			return fmt.Errorf("unknown source kind %q", convertFrom)
		}
		to, ok := timeconv.ParseKind(convertTo)
		if !ok {
			return fmt.Errorf("unknown target kind %q", convertTo)
		}

		var today *civil.Date
		if convertToday != "" {
			d, err := civil.ParseDate(convertToday)
			if err != nil {
				return fmt.Errorf("parsing --today: %w", err)
			}
			today = &d
		}

		env, err := resolveEnv(convertZone, today)
		if err != nil {
			return err
		}
		svc, err := newService(env)
		if err != nil {
			return err
		}

		var src any
		if args[0] != "null" {
			src, err = from.Parse(args[0])
			if err != nil {
				return err
			}
		}

		result, err := svc.Convert(src, to.Type())
		if err != nil {
			return fmt.Errorf("converting %s to %s: %w", from, to, err)
		}
		logger.WithField("zone", env.Location().String()).Debugf("converted %s to %s", from, to)

		if convertOutput == outputText {
			fmt.Fprintln(cmd.OutOrStdout(), timeconv.Format(result))
			return nil
		}
		return writeStructured(cmd.OutOrStdout(), convertOutput, conversionResult{
			From:   from,
			To:     to,
			Zone:   env.Location().String(),
			Input:  args[0],
			Output: timeconv.Format(result),
		})
	},
}

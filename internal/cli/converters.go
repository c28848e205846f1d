package cli

import (
	"fmt"

	"github.com/chronoconv/chronoconv/internal/convert"
	"github.com/chronoconv/chronoconv/internal/timeconv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var convertersOutput string

func init() {
	convertersCmd.Flags().StringVarP(&convertersOutput, "output", "o", outputText, "Output format: text, json, yaml")
	rootCmd.AddCommand(convertersCmd)
}

// pairInfo describes one registered converter.
type pairInfo struct {
	From   timeconv.Kind `json:"from" yaml:"from"`
	To     timeconv.Kind `json:"to" yaml:"to"`
	Source string        `json:"source" yaml:"source"`
	Target string        `json:"target" yaml:"target"`
}

var convertersCmd = &cobra.Command{
	Use:   "converters",
	Short: "List the registered converters",
	Long:  `List the converters registered with the conversion service, in registration order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := resolveEnv("", nil)
		if err != nil {
			return err
		}
		svc, err := newService(env)
		if err != nil {
			return err
		}

		infos := lo.Map(svc.Pairs(), func(p convert.Pair, _ int) pairInfo {
			from, _ := timeconv.KindOf(p.Source)
			to, _ := timeconv.KindOf(p.Target)
			return pairInfo{From: from, To: to, Source: p.Source.String(), Target: p.Target.String()}
		})

		out := cmd.OutOrStdout()
		if convertersOutput != outputText {
			return writeStructured(out, convertersOutput, infos)
		}
		for _, info := range infos {
			fmt.Fprintf(out, "%-8s -> %-8s  (%s -> %s)\n", info.From, info.To, info.Source, info.Target)
		}
		return nil
	},
}

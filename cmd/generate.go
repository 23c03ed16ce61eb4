package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fleetpredict/internal/gen"
)

var generateFlags struct {
	count  int
	seed   uint64
	output string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Produce synthetic telemetry records as JSONL",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntVarP(&generateFlags.count, "count", "n", 100, "number of records")
	f.Uint64Var(&generateFlags.seed, "seed", 0, "faker seed, 0 for random")
	f.StringVarP(&generateFlags.output, "output", "o", "-", "output JSONL file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := os.Stdout
	if generateFlags.output != "-" {
		f, err := os.Create(generateFlags.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	g := gen.New(generateFlags.seed)
	enc := json.NewEncoder(out)
	for _, rec := range g.Records(generateFlags.count) {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}

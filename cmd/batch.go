package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fleetpredict/core/model"
	"fleetpredict/infra/logger"
)

var batchFlags struct {
	modelKind string
	input     string
	output    string
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Apply one rule function to a JSONL stream of records",
	Long: `batch reads one FeatureRecord per line from the input file ("-" for
stdin), applies the selected rule function to every record in order and
writes one {"input": ..., "output": ...} pair per line to the output.`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVarP(&batchFlags.modelKind, "model", "m", "", "model kind: status, speed, emergency, weather or clustering")
	f.StringVarP(&batchFlags.input, "input", "i", "-", "input JSONL file")
	f.StringVarP(&batchFlags.output, "output", "o", "-", "output JSONL file")
	_ = batchCmd.MarkFlagRequired("model")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	logg := logger.New("batch")

	kind, err := model.ParseModelKind(batchFlags.modelKind)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	svc.StartMetrics(cmd.Context())

	records, err := readRecords(batchFlags.input)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	pairs, err := svc.Batch(records, kind)
	if err != nil {
		return err
	}

	out := os.Stdout
	if batchFlags.output != "-" {
		f, err := os.Create(batchFlags.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	for _, p := range pairs {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("write pair: %w", err)
		}
	}

	m := svc.Monitor.Metrics()
	logg.Infof("processed %d records with model %s (%d emergencies, avg confidence %.3f)",
		m.TotalPredictions, kind, m.EmergencyDetections, m.AvgConfidence)
	return nil
}

func readRecords(path string) ([]model.FeatureRecord, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var records []model.FeatureRecord
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec model.FeatureRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	return records, sc.Err()
}

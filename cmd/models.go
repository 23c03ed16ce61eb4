package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"fleetpredict/core/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List model kinds and their static reference metrics",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := struct {
		Mode      string            `json:"mode"`
		Kinds     []model.ModelKind `json:"kinds"`
		Reference any               `json:"reference"`
	}{
		Mode:      string(cfg.Rules.Mode),
		Kinds:     model.Kinds(),
		Reference: cfg.Rules.Reference,
	}
	return printJSON(os.Stdout, out)
}

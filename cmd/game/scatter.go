package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"town-explorer/internal/scatter"
)

type scatterDump struct {
	Entities  int                `json:"entities"`
	Instances []scatter.Instance `json:"instances"`
}

func runScatter(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Records go to stderr only so stdout stays valid JSON.
	log, err := newLogger(cfg.Log, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	entities, instances := buildTown(cmd.Context(), cfg, log)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(scatterDump{Entities: len(entities), Instances: instances})
}

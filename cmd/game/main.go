package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	dataSource string
	forceTouch bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "town",
		Short:        "Explore a small 3D town of community buildings",
		SilenceUsage: true,
		RunE:         runViewer,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (default: config/engine.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dataSource, "data", "d", "", "entity list file or http(s) URL (overrides data.entities)")
	rootCmd.Flags().BoolVar(&forceTouch, "mobile", false, "use the touch orbit camera even without touch support")

	scatterCmd := &cobra.Command{
		Use:   "scatter",
		Short: "Print every decoration placement as JSON",
		Args:  cobra.NoArgs,
		RunE:  runScatter,
	}
	rootCmd.AddCommand(scatterCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

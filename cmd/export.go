package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talentscout/intake/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all collected data as JSON or CSV",
	Run: func(cmd *cobra.Command, _ []string) {
		export(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "json", "export format: json or csv")
	exportCmd.Flags().StringP("output", "o", "", "output file (default is stdout)")
}

func export(cmd *cobra.Command) {
	ctx := context.Background()
	gateway, zlog := adminGateway(ctx)
	defer gateway.Close()

	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			zlog.Fatal("creating output file", zap.Error(err))
		}
		defer file.Close()
		w = file
	}

	var err error
	switch format {
	case "json":
		err = store.ExportJSON(ctx, gateway, w)
	case "csv":
		err = store.ExportCSV(ctx, gateway, w)
	default:
		zlog.Fatal("unsupported export format", zap.String("format", format))
	}
	if err != nil {
		zlog.Fatal("exporting data", zap.Error(err))
	}

	if output != "" {
		fmt.Printf("exported to %s\n", output)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/dtos"
	"github.com/justsurfingit/job-canvas/internal/observability"
	"github.com/justsurfingit/job-canvas/internal/services"
)

func newGenerateCmd() *cobra.Command {
	var (
		pngPath  string
		mermaid  bool
		profile  string
		anchorX  float64
		anchorY  float64
		layoutFl string
	)

	cmd := &cobra.Command{
		Use:   "generate <request>",
		Short: "Run one request through the diagram pipeline and print the result",
		Long:  `Classifies the request, asks the model for content, lays it out and prints the canvas primitives as JSON. Use --png to also render a preview and --mermaid to print Mermaid source instead of JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v := viper.New()
			if cmd.Flags().Changed("layout") {
				v.Set("flow_layout", layoutFl)
			}
			a, logger, err := loadApp(ctx, v)
			if err != nil {
				return err
			}
			defer observability.Sync()

			run, err := a.Diagrams.Generate(ctx, services.GenerateRequest{
				Text:           args[0],
				ProfileSummary: profile,
				Anchor:         diagram.Position{X: anchorX, Y: anchorY},
			})
			if err != nil {
				return err
			}
			logger.Info("Diagram generated", zap.String("id", run.ID), zap.Bool("fallback", run.Fallback))

			if pngPath != "" {
				f, err := os.Create(pngPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", pngPath, err)
				}
				defer f.Close()
				if err := a.Diagrams.Preview(ctx, run.ID, f); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if mermaid {
				src, err := a.Diagrams.Mermaid(ctx, run.ID)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, src)
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(dtos.NewDiagramResponse(run))
		},
	}

	cmd.Flags().StringVar(&pngPath, "png", "", "write a PNG preview to this file")
	cmd.Flags().BoolVar(&mermaid, "mermaid", false, "print Mermaid source instead of JSON")
	cmd.Flags().StringVar(&profile, "profile", "", "profile summary passed as context")
	cmd.Flags().Float64Var(&anchorX, "x", 0, "anchor x in canvas coordinates")
	cmd.Flags().Float64Var(&anchorY, "y", 0, "anchor y in canvas coordinates")
	cmd.Flags().StringVar(&layoutFl, "layout", "sequence", "flow layout strategy (sequence, layered)")
	return cmd
}

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-canvas/internal/dtos"
	"github.com/justsurfingit/job-canvas/internal/intent"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <request>",
		Short: "Print the intent detected for a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := dtos.IntentResponse{
				Intent:            intent.Classify(args[0]),
				IsCreationRequest: intent.IsCreationRequest(args[0]),
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"seqtext/internal/config"
	"seqtext/internal/corpus"
	"seqtext/internal/logging"
	"seqtext/internal/textutil"
)

type compareResult struct {
	Hypothesis string  `json:"hypothesis"`
	Reference  string  `json:"reference"`
	Sentences  int     `json:"sentences"`
	Weighted   bool    `json:"weighted"`
	Similarity float64 `json:"similarity"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var weighted bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare HYP REF",
		Short: "Score line-aligned sentences by mean cosine similarity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(_ context.Context, cfg *config.Config, logger *slog.Logger) error {
				opts := loadOptions(cfg)
				hyp, err := corpus.LoadWith(args[0], opts)
				if err != nil {
					return err
				}
				ref, err := corpus.LoadWith(args[1], opts)
				if err != nil {
					return err
				}
				hyp = corpus.StripEOS(hyp, cfg.Tokens.EOS)
				ref = corpus.StripEOS(ref, cfg.Tokens.EOS)

				result := compareResult{
					Hypothesis: args[0],
					Reference:  args[1],
					Sentences:  max(len(hyp), len(ref)),
					Weighted:   weighted,
				}
				if weighted {
					result.Similarity = textutil.WeightedCorpusSimilarity(hyp, ref)
				} else {
					result.Similarity = textutil.CorpusSimilarity(hyp, ref)
				}
				if len(hyp) != len(ref) {
					logger.Warn("line counts differ",
						logging.Int("hypothesis", len(hyp)),
						logging.Int("reference", len(ref)),
					)
				}

				if asJSON {
					return writeJSON(cmd, result)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "similarity: %.4f\n", result.Similarity)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&weighted, "idf", false, "Weight tokens by inverse document frequency")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

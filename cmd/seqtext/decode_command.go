package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"seqtext/internal/config"
	"seqtext/internal/corpus"
	"seqtext/internal/logging"
	"seqtext/internal/logits"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var source vocabSource

	cmd := &cobra.Command{
		Use:   "decode LOGITS.json OUT",
		Short: "Decode a logits tensor into sentences",
		Long: "Decode reads a (batch, time, vocab) JSON array, picks the highest scoring id\n" +
			"at every step, maps ids back to words, and cuts each sentence at the EOS token.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				v, err := source.load(runCtx, ctx, cfg)
				if err != nil {
					return err
				}
				tensor, err := logits.LoadJSON(args[0])
				if err != nil {
					return err
				}
				sents, err := logits.Decode(tensor, v.Inverse(), cfg.Tokens.EOS)
				if err != nil {
					return err
				}
				if err := corpus.WriteWith(sents, args[1], writeOptions(cfg)); err != nil {
					return err
				}
				batch, steps, vocabSize := tensor.Dims()
				logger.Info("logits decoded",
					logging.String("input", args[0]),
					logging.String("output", args[1]),
					logging.Int("batch", batch),
					logging.Int("steps", steps),
					logging.Int("vocab_size", vocabSize),
				)
				printer(cmd).Print(fmt.Sprintf("decoded %d sentences into %s", len(sents), args[1]))
				return nil
			})
		},
	}

	source.register(cmd)
	return cmd
}

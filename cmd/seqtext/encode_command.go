package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"seqtext/internal/config"
	"seqtext/internal/corpus"
	"seqtext/internal/logging"
	"seqtext/internal/vocab"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var source vocabSource

	cmd := &cobra.Command{
		Use:   "encode IN OUT",
		Short: "Map a token corpus to vocabulary ids",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				v, err := source.load(runCtx, ctx, cfg)
				if err != nil {
					return err
				}
				sents, err := corpus.LoadWith(args[0], loadOptions(cfg))
				if err != nil {
					return err
				}
				ids, err := vocab.Encode(sents, v, cfg.Tokens.UNK)
				if err != nil {
					return err
				}
				if err := corpus.WriteWith(idLines(ids), args[1], writeOptions(cfg)); err != nil {
					return err
				}
				logger.Info("corpus encoded",
					logging.String("input", args[0]),
					logging.String("output", args[1]),
					logging.Int("sentences", len(ids)),
					logging.Int("oov", v.OOV(sents)),
				)
				printer(cmd).Print(fmt.Sprintf("encoded %d sentences into %s", len(ids), args[1]))
				return nil
			})
		},
	}

	source.register(cmd)
	return cmd
}

func idLines(ids [][]int) corpus.Corpus {
	out := make(corpus.Corpus, len(ids))
	for i, row := range ids {
		line := make(corpus.Sentence, len(row))
		for j, id := range row {
			line[j] = strconv.Itoa(id)
		}
		out[i] = line
	}
	return out
}

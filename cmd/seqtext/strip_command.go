package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"seqtext/internal/config"
	"seqtext/internal/corpus"
	"seqtext/internal/logging"
)

func newStripCommand(ctx *commandContext) *cobra.Command {
	var eos string

	cmd := &cobra.Command{
		Use:   "strip IN OUT",
		Short: "Cut every sentence at its first EOS token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(_ context.Context, cfg *config.Config, logger *slog.Logger) error {
				token := cfg.Tokens.EOS
				if eos != "" {
					token = eos
				}
				sents, err := corpus.LoadWith(args[0], loadOptions(cfg, token))
				if err != nil {
					return err
				}
				stripped := corpus.StripEOS(sents, token)
				if err := corpus.WriteWith(stripped, args[1], writeOptions(cfg)); err != nil {
					return err
				}
				logger.Info("eos stripped",
					logging.String("eos", token),
					logging.Int("sentences", len(stripped)),
				)
				printer(cmd).Print(fmt.Sprintf("stripped %d sentences into %s", len(stripped), args[1]))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&eos, "eos", "", "EOS token (defaults to tokens.eos)")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"seqtext/internal/config"
	"seqtext/internal/corpus"
	"seqtext/internal/logging"
	"seqtext/internal/vocab"
	"seqtext/internal/vocabstore"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Build and manage vocabularies",
	}

	vocabCmd.AddCommand(newVocabBuildCommand(ctx))
	vocabCmd.AddCommand(newVocabImportCommand(ctx))
	vocabCmd.AddCommand(newVocabExportCommand(ctx))
	vocabCmd.AddCommand(newVocabListCommand(ctx))
	vocabCmd.AddCommand(newVocabDeleteCommand(ctx))

	return vocabCmd
}

func newVocabBuildCommand(ctx *commandContext) *cobra.Command {
	var opts vocab.BuildOptions

	cmd := &cobra.Command{
		Use:   "build IN OUT",
		Short: "Build a frequency-ranked vocabulary file from a corpus",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(_ context.Context, cfg *config.Config, logger *slog.Logger) error {
				sents, err := corpus.LoadWith(args[0], loadOptions(cfg))
				if err != nil {
					return err
				}
				v, err := vocab.Build(sents, specialsFrom(cfg), opts)
				if err != nil {
					return err
				}
				if err := vocab.Save(args[1], v, writeOptions(cfg)); err != nil {
					return err
				}
				logger.Info("vocabulary built",
					logging.String("output", args[1]),
					logging.Int("size", len(v)),
					logging.Int("min_count", opts.MinCount),
					logging.Int("max_size", opts.MaxSize),
				)
				printer(cmd).Print(fmt.Sprintf("wrote %d tokens to %s", len(v), args[1]))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&opts.MinCount, "min-count", 1, "Drop words seen fewer times")
	cmd.Flags().IntVar(&opts.MaxSize, "max-size", 0, "Cap the vocabulary size including special tokens (0 = unbounded)")
	return cmd
}

func newVocabImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import NAME FILE",
		Short: "Store a vocabulary file under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				v, err := vocab.Load(args[1])
				if err != nil {
					return err
				}
				name := storeName(args[0])
				err = ctx.withStore(runCtx, cfg, func(store *vocabstore.Store) error {
					return store.Save(runCtx, name, v)
				})
				if err != nil {
					return err
				}
				logger.Info("vocabulary imported", logging.String("name", name), logging.Int("size", len(v)))
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tokens as %s\n", len(v), name)
				return nil
			})
		},
	}
}

func newVocabExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export NAME FILE",
		Short: "Write a stored vocabulary to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				name := storeName(args[0])
				var v vocab.Vocabulary
				err := ctx.withStore(runCtx, cfg, func(store *vocabstore.Store) error {
					var err error
					v, err = store.Load(runCtx, name)
					return err
				})
				if err != nil {
					return err
				}
				if err := vocab.Save(args[1], v, writeOptions(cfg)); err != nil {
					return err
				}
				logger.Info("vocabulary exported", logging.String("name", name), logging.String("output", args[1]))
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%d tokens) to %s\n", name, len(v), args[1])
				return nil
			})
		},
	}
}

func newVocabListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored vocabularies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(runCtx context.Context, cfg *config.Config, _ *slog.Logger) error {
				var (
					summaries []vocabstore.Summary
					storePath string
				)
				err := ctx.withStore(runCtx, cfg, func(store *vocabstore.Store) error {
					var err error
					storePath = store.Path()
					summaries, err = store.List(runCtx)
					return err
				})
				if err != nil {
					return err
				}

				if asJSON {
					if summaries == nil {
						summaries = []vocabstore.Summary{}
					}
					return writeJSON(cmd, summaries)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Store: %s\n", storePath)
				if len(summaries) == 0 {
					fmt.Fprintln(out, "No vocabularies stored")
					return nil
				}
				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					rows = append(rows, []string{s.Name, strconv.Itoa(s.Tokens), humanize.Time(s.UpdatedAt)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Name", "Tokens", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
					shouldColorize(out),
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newVocabDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a stored vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(runCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
				name := storeName(args[0])
				err := ctx.withStore(runCtx, cfg, func(store *vocabstore.Store) error {
					return store.Delete(runCtx, name)
				})
				if err != nil {
					return err
				}
				logger.Info("vocabulary deleted", logging.String("name", name))
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
				return nil
			})
		},
	}
}

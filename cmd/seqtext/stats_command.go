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
	"seqtext/internal/fileutil"
)

type corpusStats struct {
	Path           string  `json:"path"`
	SizeBytes      int64   `json:"size_bytes"`
	Sentences      int     `json:"sentences"`
	EmptySentences int     `json:"empty_sentences"`
	Tokens         int     `json:"tokens"`
	UniqueTokens   int     `json:"unique_tokens"`
	MaxLength      int     `json:"max_length"`
	MeanLength     float64 `json:"mean_length"`
	FoldCase       bool    `json:"fold_case"`
	VocabSize      *int    `json:"vocab_size,omitempty"`
	OOV            *int    `json:"oov,omitempty"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var source vocabSource
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats IN",
		Short: "Summarize a token corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(runCtx context.Context, cfg *config.Config, _ *slog.Logger) error {
				sents, err := corpus.LoadWith(args[0], loadOptions(cfg))
				if err != nil {
					return err
				}
				size, err := fileutil.Size(args[0])
				if err != nil {
					return err
				}
				stats := summarize(sents)
				stats.Path = args[0]
				stats.SizeBytes = size
				stats.FoldCase = cfg.Corpus.FoldCase

				if source.set() {
					v, err := source.load(runCtx, ctx, cfg)
					if err != nil {
						return err
					}
					vocabSize := len(v)
					oov := v.OOV(sents)
					stats.VocabSize = &vocabSize
					stats.OOV = &oov
				}

				if asJSON {
					return writeJSON(cmd, stats)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"Metric", "Value"},
					statsRows(stats),
					[]columnAlignment{alignLeft, alignRight},
					shouldColorize(out),
				))
				return nil
			})
		},
	}

	source.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func summarize(sents corpus.Corpus) corpusStats {
	stats := corpusStats{Sentences: len(sents)}
	seen := make(map[string]struct{})
	for _, sent := range sents {
		if len(sent) == 0 {
			stats.EmptySentences++
		}
		stats.Tokens += len(sent)
		stats.MaxLength = max(stats.MaxLength, len(sent))
		for _, tok := range sent {
			seen[tok] = struct{}{}
		}
	}
	stats.UniqueTokens = len(seen)
	if stats.Sentences > 0 {
		stats.MeanLength = float64(stats.Tokens) / float64(stats.Sentences)
	}
	return stats
}

func statsRows(stats corpusStats) [][]string {
	rows := [][]string{
		{"File", stats.Path},
		{"Size", humanize.Bytes(uint64(stats.SizeBytes))},
		{"Sentences", humanize.Comma(int64(stats.Sentences))},
		{"Empty sentences", humanize.Comma(int64(stats.EmptySentences))},
		{"Tokens", humanize.Comma(int64(stats.Tokens))},
		{"Unique tokens", humanize.Comma(int64(stats.UniqueTokens))},
		{"Max length", strconv.Itoa(stats.MaxLength)},
		{"Mean length", strconv.FormatFloat(stats.MeanLength, 'f', 2, 64)},
		{"Case folding", onOff(stats.FoldCase)},
	}
	if stats.VocabSize != nil {
		rows = append(rows, []string{"Vocabulary size", humanize.Comma(int64(*stats.VocabSize))})
	}
	if stats.OOV != nil {
		rows = append(rows, []string{"OOV tokens", humanize.Comma(int64(*stats.OOV))})
	}
	return rows
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}

package main

import (
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"testing"

	"seqtext/internal/config"
	"seqtext/internal/testsupport"
	"seqtext/internal/vocabstore"
)

var testVocab = []string{"_PAD", "_GO", "_EOS", "_UNK", "hello", "world"}

func TestEncodeWithVocabFile(t *testing.T) {
	env := setupCLITestEnv(t)
	in, out, vocabFile := env.path("in.txt"), env.path("out.txt"), env.path("vocab.txt")
	testsupport.WriteLines(t, in, "hello world", "", "foo hello")
	testsupport.WriteLines(t, vocabFile, testVocab...)

	_, stderr, err := runCLI(t, []string{"encode", "--vocab", vocabFile, in, out}, env.configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	requireContains(t, stderr, "] encoded 3 sentences")

	got := testsupport.ReadLines(t, out)
	want := []string{"4 5", "", "3 4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("encoded lines = %q, want %q", got, want)
	}
}

func TestEncodeRequiresVocabulary(t *testing.T) {
	env := setupCLITestEnv(t)
	in := env.path("in.txt")
	testsupport.WriteLines(t, in, "hello")

	_, _, err := runCLI(t, []string{"encode", in, env.path("out.txt")}, env.configPath)
	if !errors.Is(err, errNoVocabulary) {
		t.Fatalf("expected errNoVocabulary, got %v", err)
	}
}

func TestDecodeLogits(t *testing.T) {
	env := setupCLITestEnv(t)
	logitsFile, out, vocabFile := env.path("logits.json"), env.path("out.txt"), env.path("vocab.txt")
	testsupport.WriteLines(t, vocabFile, testVocab...)
	// Row 0 picks hello, world, _EOS; row 1 picks _EOS first.
	data := `[
  [[0,0,0,0,9,1],[0,0,0,0,1,9],[0,0,9,0,0,0]],
  [[0,0,9,0,0,0],[0,0,0,0,9,0],[0,0,0,0,0,9]]
]`
	if err := os.WriteFile(logitsFile, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, []string{"decode", "--vocab", vocabFile, logitsFile, out}, env.configPath); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := testsupport.ReadLines(t, out)
	want := []string{"hello world", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decoded lines = %q, want %q", got, want)
	}
}

func TestStripUsesConfiguredEOS(t *testing.T) {
	env := setupCLITestEnv(t)
	in, out := env.path("in.txt"), env.path("out.txt")
	testsupport.WriteLines(t, in, "a b _EOS c", "_EOS", "d e")

	if _, _, err := runCLI(t, []string{"strip", in, out}, env.configPath); err != nil {
		t.Fatalf("strip: %v", err)
	}
	got := testsupport.ReadLines(t, out)
	want := []string{"a b", "", "d e"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("stripped lines = %q, want %q", got, want)
	}

	if _, _, err := runCLI(t, []string{"strip", "--eos", "b", in, out}, env.configPath); err != nil {
		t.Fatalf("strip --eos: %v", err)
	}
	if got := testsupport.ReadLines(t, out); got[0] != "a" {
		t.Fatalf("expected custom eos cut, got %q", got)
	}
}

func TestStripWithFoldCaseKeepsEOS(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFoldCase())
	in, out := env.path("in.txt"), env.path("out.txt")
	testsupport.WriteLines(t, in, "A b _EOS c", "X MARK y")

	if _, _, err := runCLI(t, []string{"strip", in, out}, env.configPath); err != nil {
		t.Fatalf("strip: %v", err)
	}
	if got := testsupport.ReadLines(t, out); !reflect.DeepEqual(got, []string{"a b", "x mark y"}) {
		t.Fatalf("stripped lines = %q", got)
	}

	if _, _, err := runCLI(t, []string{"strip", "--eos", "MARK", in, out}, env.configPath); err != nil {
		t.Fatalf("strip --eos: %v", err)
	}
	if got := testsupport.ReadLines(t, out); !reflect.DeepEqual(got, []string{"a b _EOS c", "x"}) {
		t.Fatalf("stripped with custom eos = %q", got)
	}
}

func TestEncodeWithFoldCaseKeepsSpecials(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFoldCase())
	in, out, vocabFile := env.path("in.txt"), env.path("out.txt"), env.path("vocab.txt")
	testsupport.WriteLines(t, in, "_GO Hello _EOS")
	testsupport.WriteLines(t, vocabFile, testVocab...)

	if _, _, err := runCLI(t, []string{"encode", "--vocab", vocabFile, in, out}, env.configPath); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := testsupport.ReadLines(t, out); !reflect.DeepEqual(got, []string{"1 4 2"}) {
		t.Fatalf("encoded lines = %q", got)
	}
}

func TestStripAtomicOutput(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithAtomicOutput())
	in, out := env.path("in.txt"), env.path("out.txt")
	testsupport.WriteLines(t, in, "x _EOS y")

	if _, _, err := runCLI(t, []string{"strip", in, out}, env.configPath); err != nil {
		t.Fatalf("strip: %v", err)
	}
	if got := testsupport.ReadLines(t, out); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestStatsJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	in, vocabFile := env.path("in.txt"), env.path("vocab.txt")
	testsupport.WriteLines(t, in, "hello world", "", "foo hello bar")
	testsupport.WriteLines(t, vocabFile, testVocab...)

	out, _, err := runCLI(t, []string{"stats", "--json", "--vocab", vocabFile, in}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var stats corpusStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode stats json: %v\n%s", err, out)
	}
	if stats.Sentences != 3 || stats.Tokens != 5 || stats.UniqueTokens != 4 || stats.EmptySentences != 1 || stats.MaxLength != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.OOV == nil || *stats.OOV != 2 {
		t.Fatalf("expected 2 OOV tokens, got %+v", stats.OOV)
	}
	if stats.VocabSize == nil || *stats.VocabSize != len(testVocab) {
		t.Fatalf("expected vocab size %d, got %+v", len(testVocab), stats.VocabSize)
	}
	if stats.SizeBytes == 0 {
		t.Fatal("expected non-zero size")
	}
}

func TestStatsTable(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFoldCase())
	in := env.path("in.txt")
	testsupport.WriteLines(t, in, "Hello HELLO")

	out, _, err := runCLI(t, []string{"stats", in}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Unique tokens")
	requireContains(t, out, "Case folding")
	requireContains(t, out, "on")
	if json.Valid([]byte(out)) {
		t.Fatal("expected table output, got JSON")
	}
}

func TestCompare(t *testing.T) {
	env := setupCLITestEnv(t)
	hyp, ref := env.path("hyp.txt"), env.path("ref.txt")
	testsupport.WriteLines(t, hyp, "the cat sat _EOS pad", "a b")
	testsupport.WriteLines(t, ref, "the cat sat", "a b")

	out, _, err := runCLI(t, []string{"compare", hyp, ref}, env.configPath)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "similarity: 1.0000")

	out, _, err = runCLI(t, []string{"compare", "--idf", "--json", hyp, ref}, env.configPath)
	if err != nil {
		t.Fatalf("compare --json: %v", err)
	}
	var result compareResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode compare json: %v", err)
	}
	if !result.Weighted || result.Sentences != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestVocabLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)
	in, built, exported := env.path("in.txt"), env.path("vocab.txt"), env.path("exported.txt")
	testsupport.WriteLines(t, in, "b a b", "c b a")

	if _, _, err := runCLI(t, []string{"vocab", "build", in, built}, env.configPath); err != nil {
		t.Fatalf("vocab build: %v", err)
	}
	want := []string{"_PAD", "_GO", "_EOS", "_UNK", "b", "a", "c"}
	if got := testsupport.ReadLines(t, built); !reflect.DeepEqual(got, want) {
		t.Fatalf("built vocab = %q, want %q", got, want)
	}

	out, _, err := runCLI(t, []string{"vocab", "import", "My Vocab", built}, env.configPath)
	if err != nil {
		t.Fatalf("vocab import: %v", err)
	}
	requireContains(t, out, "as my_vocab")

	out, _, err = runCLI(t, []string{"vocab", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("vocab list: %v", err)
	}
	var summaries []vocabstore.Summary
	if err := json.Unmarshal([]byte(out), &summaries); err != nil {
		t.Fatalf("decode list json: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "my_vocab" || summaries[0].Tokens != len(want) {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}

	out, _, err = runCLI(t, []string{"vocab", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("vocab list table: %v", err)
	}
	requireContains(t, out, "my_vocab")
	requireContains(t, out, "Store: "+env.cfg.Store.Path)

	if _, _, err := runCLI(t, []string{"vocab", "export", "my_vocab", exported}, env.configPath); err != nil {
		t.Fatalf("vocab export: %v", err)
	}
	if got := testsupport.ReadLines(t, exported); !reflect.DeepEqual(got, want) {
		t.Fatalf("exported vocab = %q, want %q", got, want)
	}

	encoded := env.path("encoded.txt")
	if _, _, err := runCLI(t, []string{"encode", "--stored", "My Vocab", in, encoded}, env.configPath); err != nil {
		t.Fatalf("encode --stored: %v", err)
	}
	if got := testsupport.ReadLines(t, encoded); !reflect.DeepEqual(got, []string{"4 5 4", "6 4 5"}) {
		t.Fatalf("encoded with stored vocab = %q", got)
	}

	if _, _, err := runCLI(t, []string{"vocab", "delete", "my_vocab"}, env.configPath); err != nil {
		t.Fatalf("vocab delete: %v", err)
	}
	_, _, err = runCLI(t, []string{"vocab", "delete", "my_vocab"}, env.configPath)
	if !errors.Is(err, vocabstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	out, _, err = runCLI(t, []string{"vocab", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("vocab list empty: %v", err)
	}
	requireContains(t, out, "No vocabularies stored")
}

func TestCommandLogsCarryRunID(t *testing.T) {
	env := setupCLITestEnv(t)
	in := env.path("in.txt")
	testsupport.WriteLines(t, in, "a")

	_, stderr, err := runCLI(t, []string{"stats", in}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, stderr, "INFO cli: command finished")
	requireContains(t, stderr, "run_id=")

	data, err := os.ReadFile(env.logPath())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	requireContains(t, string(data), "command started")
	requireContains(t, string(data), "command finished")
	requireContains(t, string(data), "run_id=")
	requireContains(t, string(data), "command=\"seqtext stats\"")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"--log-level", "loud", "vocab", "list"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	requireContains(t, err.Error(), "--log-level")
}

func TestConfiguredSpecialTokens(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithTokens(config.Tokens{
		Pad: "<pad>", Go: "<s>", EOS: "</s>", UNK: "<unk>",
	}))
	in, built, stripped := env.path("in.txt"), env.path("vocab.txt"), env.path("stripped.txt")
	testsupport.WriteLines(t, in, "x y </s> z")

	if _, _, err := runCLI(t, []string{"vocab", "build", in, built}, env.configPath); err != nil {
		t.Fatalf("vocab build: %v", err)
	}
	got := testsupport.ReadLines(t, built)
	if !reflect.DeepEqual(got[:4], []string{"<pad>", "<s>", "</s>", "<unk>"}) {
		t.Fatalf("expected configured specials first, got %q", got)
	}

	if _, _, err := runCLI(t, []string{"strip", in, stripped}, env.configPath); err != nil {
		t.Fatalf("strip: %v", err)
	}
	if got := testsupport.ReadLines(t, stripped); !reflect.DeepEqual(got, []string{"x y"}) {
		t.Fatalf("stripped = %q", got)
	}
}

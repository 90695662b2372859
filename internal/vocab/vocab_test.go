package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"seqtext/internal/fileutil"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		data    [][]string
		vocab   Vocabulary
		want    [][]int
		wantErr bool
	}{
		{
			name:  "unknown falls back to unk",
			data:  [][]string{{"cat"}},
			vocab: Vocabulary{"_UNK": 0},
			want:  [][]int{{0}},
		},
		{
			name:  "mixed known and unknown",
			data:  [][]string{{"the", "dog"}, {}, {"cat"}},
			vocab: Vocabulary{"_UNK": 3, "the": 4, "cat": 5},
			want:  [][]int{{4, 3}, {}, {5}},
		},
		{
			name:  "no unk needed",
			data:  [][]string{{"the"}},
			vocab: Vocabulary{"the": 7},
			want:  [][]int{{7}},
		},
		{
			name:    "unknown without unk",
			data:    [][]string{{"the", "dog"}},
			vocab:   Vocabulary{"the": 7},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.data, tt.vocab, "_UNK")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Encode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMissingKey) {
					t.Fatalf("expected ErrMissingKey, got %v", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Encode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeCustomUnknownToken(t *testing.T) {
	got, err := Encode([][]string{{"zebra"}}, Vocabulary{"<unk>": 1}, "<unk>")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, [][]int{{1}}) {
		t.Fatalf("Encode() = %v", got)
	}
}

func TestDecode(t *testing.T) {
	inv := Inverse{0: "x", 1: "y"}
	got, err := Decode([][]int{{1, 0}, {}}, inv)
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]string{{"y", "x"}, {}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode() = %q, want %q", got, want)
	}
	if _, err := Decode([][]int{{2}}, inv); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestInverseAndTokens(t *testing.T) {
	v := Vocabulary{"b": 1, "a": 0, "c": 2}
	if want := (Inverse{0: "a", 1: "b", 2: "c"}); !reflect.DeepEqual(v.Inverse(), want) {
		t.Fatalf("Inverse() = %v", v.Inverse())
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(v.Tokens(), want) {
		t.Fatalf("Tokens() = %q", v.Tokens())
	}

	shared := Vocabulary{"z": 0, "y": 0}
	if got := shared.Inverse()[0]; got != "y" {
		t.Fatalf("expected lexically smallest word for shared id, got %q", got)
	}
}

func TestFromTokensAndOOV(t *testing.T) {
	v := FromTokens([]string{"_UNK", "a", "b", "a"})
	if want := (Vocabulary{"_UNK": 0, "a": 1, "b": 2}); !reflect.DeepEqual(v, want) {
		t.Fatalf("FromTokens() = %v", v)
	}
	if n := v.OOV([][]string{{"a", "q"}, {"r", "b"}}); n != 2 {
		t.Fatalf("OOV() = %d, want 2", n)
	}
}

func TestBuild(t *testing.T) {
	data := [][]string{
		{"the", "cat", "sat"},
		{"the", "dog", "sat"},
		{"the", "_EOS", "bird"},
	}
	v, err := Build(data, DefaultSpecials(), BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"_PAD", "_GO", "_EOS", "_UNK", "the", "sat", "bird", "cat", "dog"}
	if got := v.Tokens(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Build() tokens = %q, want %q", got, want)
	}

	limited, err := Build(data, DefaultSpecials(), BuildOptions{MinCount: 2, MaxSize: 5})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"_PAD", "_GO", "_EOS", "_UNK", "the"}; !reflect.DeepEqual(limited.Tokens(), want) {
		t.Fatalf("Build(limited) tokens = %q", limited.Tokens())
	}

	if _, err := Build(data, DefaultSpecials(), BuildOptions{MaxSize: 2}); err == nil {
		t.Fatal("expected error when max size cannot hold specials")
	}
	dup := DefaultSpecials()
	dup.Go = dup.Pad
	if _, err := Build(data, dup, BuildOptions{}); err == nil {
		t.Fatal("expected error for duplicated special token")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	v := FromTokens([]string{"_PAD", "_GO", "_EOS", "_UNK", "hello"})

	if err := Save(path, v, fileutil.WriteOptions{Atomic: true}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "_PAD\n_GO\n_EOS\n_UNK\nhello\n" {
		t.Fatalf("unexpected file content %q", content)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("round trip = %v, want %v", got, v)
	}
}

func TestSaveRejectsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := Save(path, Vocabulary{"a": 0, "b": 2}, fileutil.WriteOptions{}); err == nil {
		t.Fatal("expected error for non-contiguous ids")
	}
}

func TestReadRejectsMalformed(t *testing.T) {
	for _, body := range []string{"a\n\nb\n", "a\na\n", "a b\n"} {
		if _, err := Read(strings.NewReader(body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

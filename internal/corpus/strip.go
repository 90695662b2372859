package corpus

import "slices"

// StripEOS returns a copy of sents where every sentence is cut before its
// first eos token. Sentences without eos are copied unchanged.
func StripEOS(sents Corpus, eos string) Corpus {
	out := make(Corpus, len(sents))
	for i, sent := range sents {
		end := len(sent)
		if idx := slices.Index(sent, eos); idx >= 0 {
			end = idx
		}
		out[i] = slices.Clone(sent[:end:end])
		if out[i] == nil {
			out[i] = Sentence{}
		}
	}
	return out
}

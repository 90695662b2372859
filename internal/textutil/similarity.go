package textutil

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// CorpusSimilarity returns the mean cosine similarity of line-aligned
// sentences. Lines present on only one side score 0. Two empty sentences
// score 1, and two empty corpora are identical.
func CorpusSimilarity(a, b [][]string) float64 {
	return corpusSimilarity(a, b, nil)
}

// WeightedCorpusSimilarity is CorpusSimilarity with TF-IDF weighting, where
// document frequencies are gathered from the sentences of both corpora.
func WeightedCorpusSimilarity(a, b [][]string) float64 {
	df := NewDocFreq()
	for _, side := range [][][]string{a, b} {
		for _, sent := range side {
			df.Add(NewFingerprint(sent))
		}
	}
	return corpusSimilarity(a, b, df.IDF())
}

func corpusSimilarity(a, b [][]string, idf map[string]float64) float64 {
	n := max(len(a), len(b))
	if n == 0 {
		return 1
	}
	var total float64
	for i := 0; i < min(len(a), len(b)); i++ {
		if len(a[i]) == 0 && len(b[i]) == 0 {
			total++
			continue
		}
		fa := NewFingerprint(a[i]).WithIDF(idf)
		fb := NewFingerprint(b[i]).WithIDF(idf)
		total += CosineSimilarity(fa, fb)
	}
	return total / float64(n)
}

package analyzer

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// maxFeatures caps the vocabulary used for TF-IDF vectors
const maxFeatures = 1000

// tokenize splits text into lowercase alphabetic tokens with stopwords and
// single characters removed.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 1 || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// termCounts builds a term frequency map for a token stream
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

// tfidfCosine computes the cosine similarity between the TF-IDF vectors of
// two documents. The vocabulary is capped at maxFeatures terms by combined
// frequency; IDF uses the smoothed form ln((1+n)/(1+df))+1 over the two
// documents. Returns a value in [0,1].
func tfidfCosine(docA, docB string) float64 {
	countsA := termCounts(tokenize(docA))
	countsB := termCounts(tokenize(docB))

	vocab := buildVocabulary(countsA, countsB)
	if len(vocab) == 0 {
		return 0
	}

	const n = 2.0
	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))

	for i, term := range vocab {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log((1+n)/(1+df)) + 1

		vecA[i] = float64(countsA[term]) * idf
		vecB[i] = float64(countsB[term]) * idf
	}

	return cosine(vecA, vecB)
}

// buildVocabulary merges both documents' terms, keeping the most frequent
func buildVocabulary(countsA, countsB map[string]int) []string {
	totals := make(map[string]int, len(countsA)+len(countsB))
	for term, count := range countsA {
		totals[term] += count
	}
	for term, count := range countsB {
		totals[term] += count
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	return terms
}

// cosine computes the cosine similarity between two equal-length vectors
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

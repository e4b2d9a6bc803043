package tokenizer

import (
	"fmt"
	"sync"
	"testing"
)

var (
	benchModelOnce sync.Once
	benchModel     *Model
	benchModelErr  error
)

func loadBenchModel(b *testing.B) *Model {
	benchModelOnce.Do(func() {
		counts := map[string]int{
			"low": 5, "lower": 2, "newest": 6, "widest": 3,
			"lowest": 4, "newer": 3, "wider": 2, "news": 7,
		}
		for i := 0; i < 2000; i++ {
			counts[fmt.Sprintf("bench%dword%d", i%53, i)] = 1 + i%11
		}
		benchModel, benchModelErr = TrainCounts(counts, TrainerOpts{MaxMerges: 200})
	})
	if benchModelErr != nil {
		b.Fatalf("train bench model: %v", benchModelErr)
	}
	return benchModel
}

func BenchmarkEncodeWord_Seen(b *testing.B) {
	enc := NewEncoder(loadBenchModel(b))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if toks := enc.EncodeWord("newest"); len(toks) == 0 {
			b.Fatal("expected tokens")
		}
	}
}

func BenchmarkEncodeWord_Unseen(b *testing.B) {
	enc := NewEncoder(loadBenchModel(b))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Defeat the cache so the merge loop runs every iteration.
		word := fmt.Sprintf("unhappiness%d", i)
		if toks := enc.EncodeWord(word); len(toks) == 0 {
			b.Fatal("expected tokens")
		}
	}
}

func BenchmarkPairStats(b *testing.B) {
	counts := make(map[string]int, 5000)
	for i := 0; i < 5000; i++ {
		counts[fmt.Sprintf("stats%dword%d", i%97, i)] = 1 + i%7
	}
	v, err := newVocabStateCounts(counts, "</w>")
	if err != nil {
		b.Fatalf("newVocabStateCounts: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if stats := pairStats(v.words); len(stats) == 0 {
			b.Fatal("expected stats")
		}
	}
}

func BenchmarkPairStatsParallel(b *testing.B) {
	counts := make(map[string]int, 5000)
	for i := 0; i < 5000; i++ {
		counts[fmt.Sprintf("stats%dword%d", i%97, i)] = 1 + i%7
	}
	v, err := newVocabStateCounts(counts, "</w>")
	if err != nil {
		b.Fatalf("newVocabStateCounts: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if stats := pairStatsParallel(v.words); len(stats) == 0 {
			b.Fatal("expected stats")
		}
	}
}

package tokenizer

import (
	"runtime"
	"sync"
)

// pairStats aggregates adjacent-symbol pair frequencies across all words,
// weighted by word frequency. It must be recomputed after every merge: one
// merge changes adjacency non-locally within each word that contains it.
func pairStats(words []wordEntry) map[Pair]int {
	stats := make(map[Pair]int)
	countPairs(words, stats)
	return stats
}

func countPairs(words []wordEntry, stats map[Pair]int) {
	for _, w := range words {
		for j := 0; j+1 < len(w.syms); j++ {
			stats[Pair{w.syms[j], w.syms[j+1]}] += w.freq
		}
	}
}

// parallelThreshold is the word count below which sharding the scan costs
// more than it saves.
const parallelThreshold = 4096

// pairStatsParallel shards the scan across workers and sum-reduces the
// partial maps. Addition is commutative, so the result is identical to the
// sequential scan regardless of shard boundaries or completion order; merge
// selection stays deterministic.
func pairStatsParallel(words []wordEntry) map[Pair]int {
	workers := runtime.GOMAXPROCS(0)
	if workers < 2 || len(words) < parallelThreshold {
		return pairStats(words)
	}
	if workers > len(words) {
		workers = len(words)
	}

	// Walk shard bounds directly so no shard can start past the end of
	// the slice; ceil-sized shards mean the shard count can be below the
	// worker count, never above it.
	chunk := (len(words) + workers - 1) / workers
	shards := (len(words) + chunk - 1) / chunk
	partials := make([]map[Pair]int, shards)
	var wg sync.WaitGroup
	for i := 0; i < shards; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(words) {
			hi = len(words)
		}
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			m := make(map[Pair]int)
			countPairs(words[lo:hi], m)
			partials[i] = m
		}(i, lo, hi)
	}
	wg.Wait()

	stats := partials[0]
	for _, m := range partials[1:] {
		for p, n := range m {
			stats[p] += n
		}
	}
	return stats
}

// selectPair picks the pair with the strictly maximal aggregate frequency.
// Ties break by the canonical pair ordering (lexicographic on the
// concatenated string, then on the left symbol), so the same statistics
// always yield the same choice. Returns false when stats is empty.
func selectPair(stats map[Pair]int) (Pair, int, bool) {
	var best Pair
	bestFreq := 0
	found := false
	for p, f := range stats {
		switch {
		case !found, f > bestFreq:
			best, bestFreq, found = p, f, true
		case f == bestFreq && lessPair(p, best):
			best = p
		}
	}
	return best, bestFreq, found
}

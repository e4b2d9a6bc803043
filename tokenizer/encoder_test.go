package tokenizer

import (
	"strings"
	"testing"
)

func referenceModel(t *testing.T) *Model {
	t.Helper()
	m, err := TrainCounts(referenceCounts(), TrainerOpts{MaxMerges: 10})
	if err != nil {
		t.Fatalf("TrainCounts: %v", err)
	}
	return m
}

func TestEncoderReconstruction(t *testing.T) {
	enc := NewEncoder(referenceModel(t))
	for _, word := range []string{"low", "lower", "newest", "widest", "lowest", "west"} {
		segs := enc.Segments(word)
		if len(segs) == 0 {
			t.Fatalf("%q: no segments", word)
		}
		joined := strings.Join(segs, "")
		if got := strings.TrimSuffix(joined, "</w>"); got != word {
			t.Fatalf("%q reconstructed as %q (segments %v)", word, got, segs)
		}
	}
}

func TestEncoderIdempotent(t *testing.T) {
	enc := NewEncoder(referenceModel(t))
	first := enc.Segments("newest")
	again := enc.MergeSymbols(append([]string(nil), first...))
	if len(again) != len(first) {
		t.Fatalf("re-encoding changed segmentation: %v -> %v", first, again)
	}
	for i := range first {
		if again[i] != first[i] {
			t.Fatalf("re-encoding changed segmentation: %v -> %v", first, again)
		}
	}
}

func TestEncoderDeterministic(t *testing.T) {
	enc := NewEncoder(referenceModel(t))
	want := enc.EncodeWord("widest")
	for i := 0; i < 10; i++ {
		got := enc.EncodeWord("widest")
		if len(got) != len(want) {
			t.Fatalf("run %d: %v want %v", i, got, want)
		}
		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("run %d: %v want %v", i, got, want)
			}
		}
	}
}

func TestEncoderRankPriority(t *testing.T) {
	// Rules (a,b) and (b,c) are both applicable to "abc"; the lower rank
	// must fire first, yielding [ab c</w>...] never [a bc ...].
	alphabet := map[string]struct{}{"a": {}, "b": {}, "c": {}, "</w>": {}}
	m := buildModel([]MergeRule{{"a", "b"}, {"b", "c"}}, alphabet, DefaultSpecials())
	enc := NewEncoder(m)

	segs := enc.Segments("abc")
	if segs[0] != "ab" {
		t.Fatalf("lowest rank did not apply first: %v", segs)
	}
	for _, s := range segs {
		if s == "bc" {
			t.Fatalf("higher-rank rule preempted lower: %v", segs)
		}
	}
}

func TestEncoderUnknownSymbolsRecovered(t *testing.T) {
	enc := NewEncoder(referenceModel(t))

	// "unhappiness" contains characters the reference corpus never saw
	// (u, h, a, p). Encoding must terminate, return a non-empty sequence
	// and substitute the unknown id instead of failing.
	ids, unknown := enc.EncodeWordStats("unhappiness")
	if len(ids) == 0 {
		t.Fatal("expected a non-empty token sequence")
	}
	if unknown == 0 {
		t.Fatal("expected unknown substitutions")
	}
	sawUnk := false
	for _, id := range ids {
		if id == IDUnknown {
			sawUnk = true
		}
	}
	if !sawUnk {
		t.Fatalf("no unknown id in %v", ids)
	}

	// Known words report zero unknowns.
	if _, unknown := enc.EncodeWordStats("newest"); unknown != 0 {
		t.Fatalf("newest reported %d unknowns", unknown)
	}
}

func TestEncoderDecodeRoundTrip(t *testing.T) {
	model := referenceModel(t)
	enc := NewEncoder(model)
	ids := enc.EncodeWord("newest")
	syms := enc.Decode(ids)
	joined := strings.Join(syms, "")
	if got := strings.TrimSuffix(joined, "</w>"); got != "newest" {
		t.Fatalf("decode round trip produced %q", got)
	}
}

func TestMergeSymbolsRewritesInPlace(t *testing.T) {
	alphabet := map[string]struct{}{"a": {}, "b": {}, "c": {}, "</w>": {}}
	m := buildModel([]MergeRule{{"a", "b"}}, alphabet, DefaultSpecials())
	enc := NewEncoder(m)

	syms := []string{"a", "b", "c"}
	out := enc.MergeSymbols(syms)
	if len(out) != 2 || out[0] != "ab" || out[1] != "c" {
		t.Fatalf("merged = %v want [ab c]", out)
	}
	// The input backing array is reused: callers keep a copy if they
	// still need the original sequence.
	if syms[0] != "ab" {
		t.Fatalf("input not rewritten in place: %v", syms)
	}
}

func TestEncoderCachedResultStable(t *testing.T) {
	enc := NewEncoder(referenceModel(t))
	a := enc.EncodeWord("newest")
	a[0] = 999999 // callers own returned slices
	b := enc.EncodeWord("newest")
	if b[0] == 999999 {
		t.Fatal("cache leaked a mutable slice")
	}
}

package tokenizer

import "sort"

// Model is the immutable artifact of training: the ordered merge rules, the
// symbol -> id table and the reserved specials. Encoders hold a read-only
// reference; nothing here mutates after construction, so a Model is safe
// for concurrent use.
type Model struct {
	merges   []MergeRule
	ranks    map[Pair]Rank   // (left,right) -> rank, index into merges
	ids      map[string]Rank // symbol -> id
	store    *symbolStore    // id -> symbol
	specials Specials
}

// buildModel derives the vocabulary id table from the base alphabet and the
// merge history. Assignment is fully deterministic: specials take their
// fixed ids, the base alphabet follows in lexicographic order, then merged
// symbols in rank order. A merged symbol whose concatenation collides with
// an existing symbol keeps the earlier id.
func buildModel(merges []MergeRule, alphabet map[string]struct{}, sp Specials) *Model {
	ids := make(map[string]Rank, len(alphabet)+len(merges)+numSpecials)
	ids[sp.Unknown] = IDUnknown
	ids[sp.Padding] = IDPadding
	ids[sp.EndOfWord] = IDEndWord

	base := make([]string, 0, len(alphabet))
	for s := range alphabet {
		if _, ok := ids[s]; !ok {
			base = append(base, s)
		}
	}
	sort.Strings(base)
	next := Rank(numSpecials)
	for _, s := range base {
		ids[s] = next
		next++
	}

	ranks := make(map[Pair]Rank, len(merges))
	for i, mr := range merges {
		ranks[Pair{mr.Left, mr.Right}] = Rank(i)
		joined := mr.Left + mr.Right
		if _, ok := ids[joined]; !ok {
			ids[joined] = next
			next++
		}
	}

	return &Model{
		merges:   append([]MergeRule(nil), merges...),
		ranks:    ranks,
		ids:      ids,
		store:    newSymbolStore(ids),
		specials: sp,
	}
}

// Merges returns a copy of the merge rules in rank order.
func (m *Model) Merges() []MergeRule { return append([]MergeRule(nil), m.merges...) }

// MergeCount returns the number of learned merge rules.
func (m *Model) MergeCount() int { return len(m.merges) }

// VocabSize returns the number of symbols with assigned ids, specials included.
func (m *Model) VocabSize() int { return len(m.ids) }

// Specials returns the reserved symbols.
func (m *Model) Specials() Specials { return m.specials }

// ID resolves a symbol to its id.
func (m *Model) ID(sym string) (Rank, bool) {
	id, ok := m.ids[sym]
	return id, ok
}

// IDOrUnknown resolves a symbol to its id, substituting the unknown id for
// symbols outside the vocabulary.
func (m *Model) IDOrUnknown(sym string) Rank {
	if id, ok := m.ids[sym]; ok {
		return id
	}
	return IDUnknown
}

// rankOf returns the rank of the merge rule for p, or noRank.
func (m *Model) rankOf(p Pair) Rank {
	if r, ok := m.ranks[p]; ok {
		return r
	}
	return noRank
}

// Symbol resolves an id back to its surface symbol.
func (m *Model) Symbol(id Rank) (string, bool) {
	return m.store.Lookup(id)
}

// Equal reports whether two models encode identically: same merge order,
// same id assignment, same specials. Used by round-trip tests.
func (m *Model) Equal(o *Model) bool {
	if m.specials != o.specials || len(m.merges) != len(o.merges) || len(m.ids) != len(o.ids) {
		return false
	}
	for i := range m.merges {
		if m.merges[i] != o.merges[i] {
			return false
		}
	}
	for s, id := range m.ids {
		if oid, ok := o.ids[s]; !ok || oid != id {
			return false
		}
	}
	return true
}

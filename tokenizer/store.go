package tokenizer

// symbolStore maps token ids back to their surface symbols through a single
// blob plus an offset table, keeping the reverse vocabulary in two
// allocations no matter how many symbols the model carries.
type symbolStore struct {
	blob string
	off  []uint32
}

func newSymbolStore(ids map[string]Rank) *symbolStore {
	maxID := Rank(0)
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	size := int(maxID) + 1
	syms := make([]string, size)
	total := 0
	for s, id := range ids {
		if syms[int(id)] == "" {
			syms[int(id)] = s
			total += len(s)
		}
	}
	var blob []byte
	off := make([]uint32, size+1)
	blob = make([]byte, 0, total)
	for i, s := range syms {
		off[i] = uint32(len(blob))
		blob = append(blob, s...)
	}
	off[size] = uint32(len(blob))
	return &symbolStore{blob: string(blob), off: off}
}

// Lookup returns the symbol for id, or false when the id is unassigned.
func (s *symbolStore) Lookup(id Rank) (string, bool) {
	if int(id) >= len(s.off)-1 {
		return "", false
	}
	a, b := s.off[id], s.off[id+1]
	if a == b {
		return "", false
	}
	return s.blob[a:b], true
}

package tokenizer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// modelFile is the persisted shape. Merge order is rank order; vocab ids are
// stored explicitly so a load reproduces the exact assignment the encoder's
// output depends on.
type modelFile struct {
	Merges   [][2]string     `json:"merges"`
	Vocab    map[string]Rank `json:"vocab"`
	Specials *Specials       `json:"specials"`
}

// Save writes the model as JSON. The codec only translates; it never
// mutates model state.
func Save(w io.Writer, m *Model) error {
	mf := modelFile{
		Merges:   make([][2]string, len(m.merges)),
		Vocab:    m.ids,
		Specials: &m.specials,
	}
	for i, mr := range m.merges {
		mf.Merges[i] = [2]string{mr.Left, mr.Right}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&mf); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return nil
}

// SaveFile writes the model to path, replacing any existing file.
func SaveFile(path string, m *Model) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load reads a persisted model and reconstructs the exact rank ordering and
// id assignment. Structural problems report ErrCorruptModel; no partial
// model is ever returned.
func Load(r io.Reader) (*Model, error) {
	var mf modelFile
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}
	if err := validate(&mf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptModel, err)
	}

	merges := make([]MergeRule, len(mf.Merges))
	ranks := make(map[Pair]Rank, len(mf.Merges))
	for i, p := range mf.Merges {
		merges[i] = MergeRule{Left: p[0], Right: p[1]}
		ranks[Pair{p[0], p[1]}] = Rank(i)
	}
	return &Model{
		merges:   merges,
		ranks:    ranks,
		ids:      mf.Vocab,
		store:    newSymbolStore(mf.Vocab),
		specials: *mf.Specials,
	}, nil
}

// LoadFile reads a model from path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

func validate(mf *modelFile) error {
	if mf.Vocab == nil {
		return fmt.Errorf("missing vocab")
	}
	if mf.Merges == nil {
		return fmt.Errorf("missing merges")
	}
	if mf.Specials == nil {
		return fmt.Errorf("missing specials")
	}
	sp := *mf.Specials
	if !sp.valid() {
		return fmt.Errorf("invalid specials %+v", sp)
	}
	for _, s := range []string{sp.Unknown, sp.Padding, sp.EndOfWord} {
		if _, ok := mf.Vocab[s]; !ok {
			return fmt.Errorf("special %q missing from vocab", s)
		}
	}
	seen := make(map[Rank]string, len(mf.Vocab))
	for s, id := range mf.Vocab {
		if s == "" {
			return fmt.Errorf("empty symbol in vocab")
		}
		// Ids must be dense: together with uniqueness this caps the
		// reverse-lookup table at len(vocab) entries, so a single huge
		// id cannot balloon the allocation on load.
		if int(id) >= len(mf.Vocab) {
			return fmt.Errorf("id %d for %q out of range for a vocab of %d", id, s, len(mf.Vocab))
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("id %d assigned to both %q and %q", id, prev, s)
		}
		seen[id] = s
	}
	for i, p := range mf.Merges {
		if p[0] == "" || p[1] == "" {
			return fmt.Errorf("merge %d has an empty side", i)
		}
		if _, ok := mf.Vocab[p[0]+p[1]]; !ok {
			return fmt.Errorf("merged symbol %q missing from vocab", p[0]+p[1])
		}
	}
	return nil
}

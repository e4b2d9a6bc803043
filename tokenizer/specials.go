package tokenizer

// Specials names the reserved symbols that never participate in merge
// selection. Their ids are fixed ahead of the base alphabet so they are
// stable across models trained on different corpora.
type Specials struct {
	Unknown   string `json:"unk"`
	Padding   string `json:"pad"`
	EndOfWord string `json:"eow"`
}

// Fixed special ids. Every other symbol is assigned above these.
const (
	IDUnknown Rank = 0
	IDPadding Rank = 1
	IDEndWord Rank = 2

	numSpecials = 3
)

// DefaultSpecials returns the reserved symbols used when a trainer is not
// configured otherwise.
func DefaultSpecials() Specials {
	return Specials{
		Unknown:   "<unk>",
		Padding:   "<pad>",
		EndOfWord: "</w>",
	}
}

func (s Specials) valid() bool {
	if s.Unknown == "" || s.Padding == "" || s.EndOfWord == "" {
		return false
	}
	return s.Unknown != s.Padding && s.Unknown != s.EndOfWord && s.Padding != s.EndOfWord
}

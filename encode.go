package bytepair

import (
	"runtime"
	"sync"

	"github.com/bytepair/bytepair-go/tokenizer"
)

// TextEncoder segments documents into words and encodes each word with a
// trained model. Safe for concurrent use.
type TextEncoder struct {
	enc *tokenizer.Encoder
	seg tokenizer.Segmenter
}

// NewTextEncoder wraps a model for document-level encoding.
func NewTextEncoder(m *tokenizer.Model) *TextEncoder {
	return &TextEncoder{
		enc: tokenizer.NewEncoder(m),
		seg: tokenizer.NewWordSegmenter(),
	}
}

// WordEncoder exposes the underlying per-word encoder.
func (t *TextEncoder) WordEncoder() *tokenizer.Encoder { return t.enc }

// EncodeText segments text and encodes every word in order.
func (t *TextEncoder) EncodeText(text string) Result {
	return t.encodeWords(tokenizer.Words(t.seg, text))
}

// encodeParallelThreshold is the word count below which spinning up workers
// costs more than encoding sequentially.
const encodeParallelThreshold = 256

// EncodeTextParallel is EncodeText with word-level fan-out. Words share no
// mutable state beyond the read-only model and the encoder cache, so results
// are assembled by index and match the sequential output exactly.
func (t *TextEncoder) EncodeTextParallel(text string) Result {
	words := tokenizer.Words(t.seg, text)
	if len(words) < encodeParallelThreshold {
		return t.encodeWords(words)
	}

	workers := runtime.GOMAXPROCS(0)
	perWord := make([]Result, len(words))
	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				ids, unknown := t.enc.EncodeWordStats(words[i])
				perWord[i] = Result{
					Tokens:  t.enc.Segments(words[i]),
					IDs:     ids,
					Unknown: unknown,
				}
			}
		}()
	}
	for i := range words {
		next <- i
	}
	close(next)
	wg.Wait()

	var res Result
	for _, r := range perWord {
		res.Tokens = append(res.Tokens, r.Tokens...)
		res.IDs = append(res.IDs, r.IDs...)
		res.Unknown += r.Unknown
	}
	return res
}

func (t *TextEncoder) encodeWords(words []string) Result {
	var res Result
	for _, w := range words {
		ids, unknown := t.enc.EncodeWordStats(w)
		res.IDs = append(res.IDs, ids...)
		res.Tokens = append(res.Tokens, t.enc.Segments(w)...)
		res.Unknown += unknown
	}
	return res
}

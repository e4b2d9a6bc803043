package main

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// baselineCount tokenizes text with a reference tiktoken encoding so a
// freshly trained model's token count can be sanity-checked against a
// production vocabulary.
func baselineCount(encoding, text string) (int, error) {
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return 0, fmt.Errorf("load baseline encoding %q: %w", encoding, err)
	}
	return len(tke.Encode(text, nil, nil)), nil
}

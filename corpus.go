package bytepair

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadDocuments splits raw corpus text into one document per line, dropping
// blank lines. This matches the input contract: collaborators hand the core
// a sequence of plain UTF-8 text strings.
func ReadDocuments(text string) []string {
	var docs []string
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			docs = append(docs, line)
		}
	}
	return docs
}

// ReadCorpusFile loads a plain-text corpus file as a document sequence.
func ReadCorpusFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return ReadDocuments(string(data)), nil
}

// DemoCorpus is the built-in toy corpus used by the CLI when no input is
// given.
func DemoCorpus() []string {
	return []string{"lo low lower newest wide wider widest"}
}

package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"dmchat/errors"
)

//go:embed words/*.txt
var wordFiles embed.FS

// WordList carries the loaded blacklist plus metadata for logging.
type WordList struct {
	Words     []string
	Languages []string
}

// LoadWords parses the embedded dictionaries, one .txt file per language,
// into a deduplicated word list.
func LoadWords() (*WordList, error) {
	entries, err := fs.ReadDir(wordFiles, "words")
	if err != nil {
		return nil, err
	}

	var languages []string
	unique := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// "en.txt" -> "en"
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := wordFiles.ReadFile("words/" + entry.Name())
		if err != nil {
			return nil, err
		}

		// A scanner handles both \n and \r\n line endings
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			unique[strings.ToLower(line)] = struct{}{}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(unique) == 0 {
		return nil, errors.ErrEmptyWordList
	}

	words := make([]string, 0, len(unique))
	for word := range unique {
		words = append(words, word)
	}
	sort.Strings(words)
	return &WordList{Words: words, Languages: languages}, nil
}

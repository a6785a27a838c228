//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// readtokenfile - load a json-lines corpus: one array of token strings per
// line, already cleaned and stemmed by whatever preprocessing produced it.
// Blank lines are kept as empty documents; the dtm builder drops them later.
func readtokenfile(path string) ([][]string, error) {
	const (
		MAXLINE = 16 * 1024 * 1024 // a "document" is a line; some are big
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s': %w", path, err)
	}
	defer f.Close()

	var docs [][]string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), MAXLINE)

	ln := 0
	for scanner.Scan() {
		ln++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			docs = append(docs, nil)
			continue
		}
		var tokens []string
		if err := json.Unmarshal(raw, &tokens); err != nil {
			return nil, fmt.Errorf("'%s' line %d is not a json array of strings: %w", path, ln, err)
		}
		docs = append(docs, tokens)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading '%s': %w", path, err)
	}

	return docs, nil
}

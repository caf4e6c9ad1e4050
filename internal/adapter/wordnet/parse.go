// Package wordnet loads the WordNet noun database files (WNDB format:
// index.noun, data.noun, noun.exc) into an in-memory taxonomy with
// NLTK-compatible synset naming. Parsing is pure: reader in, structs out.
package wordnet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// rawSynset is one data.noun record before naming.
type rawSynset struct {
	Offset int
	Words  []string
	Gloss  string
}

// parseIndex reads index.noun and returns lemma → synset offsets in file
// order. WordNet orders offsets by sense frequency, most common first, which
// is what makes "first sense" a sensible default.
func parseIndex(r io.Reader) (map[string][]int, error) {
	index := make(map[string][]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, " ") {
			// License header lines are indented.
			continue
		}

		fields := strings.Fields(line)
		// lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt offsets...
		if len(fields) < 6 {
			return nil, fmt.Errorf("index line %d: too few fields", lineNo)
		}

		lemma := fields[0]
		synsetCnt, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("index line %d: synset_cnt: %w", lineNo, err)
		}
		ptrCnt, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("index line %d: p_cnt: %w", lineNo, err)
		}

		offStart := 4 + ptrCnt + 2
		if len(fields) < offStart+synsetCnt {
			return nil, fmt.Errorf("index line %d: expected %d offsets", lineNo, synsetCnt)
		}

		offsets := make([]int, 0, synsetCnt)
		for _, f := range fields[offStart : offStart+synsetCnt] {
			off, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("index line %d: offset %q: %w", lineNo, f, err)
			}
			offsets = append(offsets, off)
		}
		index[lemma] = offsets
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan index: %w", err)
	}

	return index, nil
}

// parseData reads data.noun and returns offset → synset record.
func parseData(r io.Reader) (map[int]*rawSynset, error) {
	synsets := make(map[int]*rawSynset)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, " ") {
			continue
		}

		head, gloss, _ := strings.Cut(line, "|")
		fields := strings.Fields(head)
		// synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] ...
		if len(fields) < 6 {
			return nil, fmt.Errorf("data line %d: too few fields", lineNo)
		}

		offset, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("data line %d: offset: %w", lineNo, err)
		}
		// w_cnt is two-digit hexadecimal.
		wordCnt, err := strconv.ParseInt(fields[3], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("data line %d: w_cnt: %w", lineNo, err)
		}
		if len(fields) < 4+int(wordCnt)*2 {
			return nil, fmt.Errorf("data line %d: expected %d words", lineNo, wordCnt)
		}

		words := make([]string, 0, wordCnt)
		for i := 0; i < int(wordCnt); i++ {
			words = append(words, fields[4+i*2])
		}

		synsets[offset] = &rawSynset{
			Offset: offset,
			Words:  words,
			Gloss:  strings.TrimSpace(gloss),
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan data: %w", err)
	}

	return synsets, nil
}

// parseExceptions reads noun.exc: one inflected form per line followed by its
// base form(s). Only the first base form is kept.
func parseExceptions(r io.Reader) (map[string]string, error) {
	exc := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		exc[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan exceptions: %w", err)
	}

	return exc, nil
}

package wordnet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/wikisynset/internal/domain"
)

// DB is the in-memory WordNet noun taxonomy. It is read-only after Load and
// safe for concurrent use.
type DB struct {
	index   map[string][]int // lemma → offsets, most frequent sense first
	synsets map[int]*domain.Synset
	byName  map[string]*domain.Synset
	exc     map[string]string
}

// Stats holds corpus counters for startup logging.
type Stats struct {
	Lemmas     int
	Synsets    int
	Exceptions int
}

// Load reads index.noun, data.noun, and noun.exc from dir and builds the
// taxonomy. Synset names follow the NLTK convention: the synset's first word,
// part of speech, and that word's 1-based sense number in index order
// (e.g. "dog.n.01").
func Load(dir string) (*DB, error) {
	index, err := loadFile(dir, "index.noun", parseIndex)
	if err != nil {
		return nil, err
	}
	raw, err := loadFile(dir, "data.noun", parseData)
	if err != nil {
		return nil, err
	}
	exc, err := loadFile(dir, "noun.exc", parseExceptions)
	if err != nil {
		return nil, err
	}

	db := &DB{
		index:   index,
		synsets: make(map[int]*domain.Synset, len(raw)),
		byName:  make(map[string]*domain.Synset, len(raw)),
		exc:     exc,
	}

	for offset, rs := range raw {
		syn := &domain.Synset{
			Name:  db.synsetName(rs),
			Words: rs.Words,
			Gloss: rs.Gloss,
		}
		db.synsets[offset] = syn
		if syn.Name != "" {
			db.byName[syn.Name] = syn
		}
	}

	return db, nil
}

func loadFile[T any](dir, name string, parse func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return zero, fmt.Errorf("wordnet: open %s: %w", name, err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("wordnet: parse %s: %w", name, err)
	}
	return v, nil
}

// synsetName derives the canonical name from the synset's head word and that
// word's sense position in the index.
func (db *DB) synsetName(rs *rawSynset) string {
	head := strings.ToLower(rs.Words[0])
	for i, off := range db.index[head] {
		if off == rs.Offset {
			return fmt.Sprintf("%s.n.%02d", head, i+1)
		}
	}
	return ""
}

// SynsetByName returns the synset with the given canonical name, or
// domain.ErrNotFound when the name is unknown.
func (db *DB) SynsetByName(name string) (*domain.Synset, error) {
	syn, ok := db.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("wordnet: synset %q: %w", name, domain.ErrNotFound)
	}
	return syn, nil
}

// NounSenses returns the noun synsets for lemma, default (most frequent)
// sense first. The result is empty when the lemma is not in the corpus.
func (db *DB) NounSenses(lemma string) []*domain.Synset {
	key := strings.ReplaceAll(strings.ToLower(lemma), " ", "_")
	offsets := db.index[key]
	if len(offsets) == 0 {
		return nil
	}

	senses := make([]*domain.Synset, 0, len(offsets))
	for _, off := range offsets {
		if syn, ok := db.synsets[off]; ok {
			senses = append(senses, syn)
		}
	}
	return senses
}

// Stats returns corpus counters.
func (db *DB) Stats() Stats {
	return Stats{
		Lemmas:     len(db.index),
		Synsets:    len(db.synsets),
		Exceptions: len(db.exc),
	}
}

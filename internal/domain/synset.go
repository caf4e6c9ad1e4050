package domain

// Synset is a single WordNet noun synset: a group of synonymous word senses
// with a canonical name in "lemma.n.NN" form (e.g. "person.n.01").
type Synset struct {
	// Name is the canonical identifier. NN is the 1-based sense number of the
	// synset's head word, so Name always resolves back to the same synset.
	Name string
	// Words are the member lemmas in corpus order. Multi-word lemmas use
	// underscores, as in the WordNet database files.
	Words []string
	// Gloss is the definition text, including any example sentences.
	Gloss string
}

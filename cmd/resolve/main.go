// Command resolve maps one or more terms to WordNet synset names using
// Wikipedia page data. Results are printed to stdout, one line per term,
// as tab-separated "term<TAB>synset" pairs.
//
// Flags:
//
//	--rules  path to a YAML rule table file (overrides config)
//	--gloss  append the synset gloss as a third column
//
// Exit codes: 0 = all terms resolved, 1 = at least one term had no match,
// 2 = configuration or runtime error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wikisynset/internal/adapter/provider/wikipedia"
	"github.com/heartmarshall/wikisynset/internal/adapter/wordnet"
	"github.com/heartmarshall/wikisynset/internal/app"
	"github.com/heartmarshall/wikisynset/internal/config"
	"github.com/heartmarshall/wikisynset/internal/domain"
	"github.com/heartmarshall/wikisynset/internal/rules"
	"github.com/heartmarshall/wikisynset/internal/service/resolver"
)

func main() {
	rulesFlag := flag.String("rules", "", "path to YAML rule table file (overrides config)")
	glossFlag := flag.Bool("gloss", false, "append the synset gloss as a third column")
	flag.Parse()

	terms := flag.Args()
	if len(terms) == 0 {
		fmt.Fprintln(os.Stderr, "usage: resolve [--rules file] [--gloss] term [term ...]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	rulesPath := cfg.Rules.Path
	if *rulesFlag != "" {
		rulesPath = *rulesFlag
	}
	ruleSet, err := rules.Load(rulesPath)
	if err != nil {
		logger.Error("load rules", slog.String("error", err.Error()))
		os.Exit(2)
	}

	db, err := wordnet.Load(cfg.WordNet.Dir)
	if err != nil {
		logger.Error("load wordnet corpus", slog.String("error", err.Error()))
		os.Exit(2)
	}

	wiki := wikipedia.NewClient(cfg.Wikipedia, logger)
	svc := resolver.NewService(logger, wiki, db, ruleSet)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	anyMissed := false
	for _, term := range terms {
		name, err := svc.Resolve(ctx, term)
		switch {
		case errors.Is(err, domain.ErrNoMatch):
			anyMissed = true
			fmt.Fprintf(os.Stderr, "%s: no matching synset\n", term)
			continue
		case err != nil:
			logger.Error("resolve term",
				slog.String("term", term),
				slog.String("error", err.Error()),
			)
			os.Exit(2)
		}

		if *glossFlag {
			gloss := ""
			if syn, err := db.SynsetByName(name); err == nil {
				gloss = syn.Gloss
			}
			fmt.Printf("%s\t%s\t%s\n", term, name, gloss)
		} else {
			fmt.Printf("%s\t%s\n", term, name)
		}
	}

	if anyMissed {
		os.Exit(1)
	}
}

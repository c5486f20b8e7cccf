package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jobpulse/jobpulse/internal/config"
	ftconnector "github.com/jobpulse/jobpulse/internal/domain/job/providers/francetravail"
	"github.com/jobpulse/jobpulse/internal/normalize"
	"github.com/jobpulse/jobpulse/internal/region"
	"github.com/jobpulse/jobpulse/internal/sink"
	"github.com/jobpulse/jobpulse/pkg/francetravail"
	"github.com/jobpulse/jobpulse/pkg/logging"
)

// One-shot fetch for trying queries out without running the daemon.
func main() {
	maxResults := flag.Int("max", 50, "maximum number of postings to fetch")
	keywords := flag.String("keywords", "", "search keywords (overrides FT_KEYWORDS)")
	department := flag.String("department", "", "department filter (overrides FT_DEPARTMENT)")
	outPath := flag.String("out", "-", "output file, - for stdout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *keywords != "" {
		cfg.FranceTravail.Keywords = *keywords
	}
	if *department != "" {
		cfg.FranceTravail.Department = *department
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	client, err := francetravail.NewClient(francetravail.Config{
		ClientID:     cfg.FranceTravail.ClientID,
		ClientSecret: cfg.FranceTravail.ClientSecret,
		Scopes:       cfg.FranceTravail.Scopes,
		TokenURL:     cfg.FranceTravail.TokenURL,
		BaseURL:      cfg.FranceTravail.BaseURL,
		PageSize:     cfg.Ingest.PageSize,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("failed to build client: %v", err)
	}

	normalizer := normalize.NewNormalizer(region.NewResolver(nil), logger)
	connector, err := ftconnector.NewConnector(client, normalizer, ftconnector.Settings{
		Keywords:   cfg.FranceTravail.Keywords,
		Department: cfg.FranceTravail.Department,
	}, logger)
	if err != nil {
		log.Fatalf("failed to build connector: %v", err)
	}

	out := os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("failed to create output file: %v", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	ctx := context.Background()
	jobs := connector.FetchJobs(ctx, ftconnector.WithMaxResults(*maxResults))
	if err := sink.NewNDJSON(out).Store(ctx, jobs); err != nil {
		log.Fatalf("failed to write postings: %v", err)
	}

	fmt.Fprintf(os.Stderr, "fetched %d postings\n", len(jobs))
}

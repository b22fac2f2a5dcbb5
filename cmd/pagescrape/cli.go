package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagescrape"
	"github.com/rs/zerolog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger

	Scraper *pagescrape.Scraper
	Writer  pagescrape.ResultWriter
}

// ScrapeCmd handles one scrape run.
type ScrapeCmd struct {
	URL    string
	Output string
}

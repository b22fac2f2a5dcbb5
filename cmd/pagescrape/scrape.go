package main

import (
	"fmt"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/fs"
)

// Run executes the scrape command: fetch and extract the page, print the
// summary, then write the result file. The summary is printed before the
// write is attempted so a write failure never loses the extracted data.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	deps.Logger.Info().Str("url", c.URL).Msg("fetching page")

	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescrape.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, pagescrape.FormatSummary(result))

	filename := c.Output
	if filename == "" {
		filename, err = fs.DefaultFilename(c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagescrape.ErrorMessage(err))
			return err
		}
	}

	if err := deps.Writer.Write(result, filename); err != nil {
		deps.Logger.Error().Str("file", filename).Msg(pagescrape.ErrorMessage(err))
		return err
	}

	deps.Logger.Info().Str("file", filename).Msg("result saved")
	return nil
}

package mock

import "github.com/fwojciec/pagescrape"

var _ pagescrape.ResultWriter = (*Writer)(nil)

// Writer is a mock implementation of pagescrape.ResultWriter.
type Writer struct {
	WriteFn func(result *pagescrape.ScrapeResult, filename string) error
}

func (w *Writer) Write(result *pagescrape.ScrapeResult, filename string) error {
	return w.WriteFn(result, filename)
}

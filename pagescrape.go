// Package pagescrape provides a single-pass, single-page web scraper.
// It fetches one page, parses it, and extracts structured content
// (metadata, headings, paragraphs, links, images, tables, lists, code
// blocks, full text) into a uniform ScrapeResult record.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package pagescrape

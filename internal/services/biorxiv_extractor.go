package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"research_hub_go_backend/internal/models"
)

const biorxivMaxResults = 10

// Fallbacks used when a citation block is missing a field.
const (
	noTitleAvailable    = "No title available"
	noDateAvailable     = "No date available"
	noAbstractAvailable = "No abstract available"
)

// bioRxiv search page selectors.
const (
	selCitation     = ".highwire-article-citation"
	selTitle        = ".highwire-cite-title"
	selAuthorList   = ".highwire-citation-authors"
	selAuthor       = ".highwire-citation-author"
	selDate         = ".highwire-cite-metadata-date"
	selAbstractSnip = ".highwire-cite-snippet"
)

// ExtractBiorxivRecords scrapes the first biorxivMaxResults citation blocks
// from a bioRxiv search page. Relative article links are prefixed with origin.
func ExtractBiorxivRecords(r io.Reader, origin string) ([]models.PaperRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing bioRxiv page: %w", err)
	}

	var records []models.PaperRecord
	doc.Find(selCitation).EachWithBreak(func(i int, citation *goquery.Selection) bool {
		if i >= biorxivMaxResults {
			return false
		}
		records = append(records, extractCitation(citation, origin))
		return true
	})

	if records == nil {
		records = []models.PaperRecord{}
	}
	return records, nil
}

func extractCitation(citation *goquery.Selection, origin string) models.PaperRecord {
	title := citation.Find(selTitle).First()

	return models.PaperRecord{
		Title:     textOr(title, noTitleAvailable),
		Summary:   textOr(citation.Find(selAbstractSnip).First(), noAbstractAvailable),
		Authors:   citationAuthors(citation),
		Published: textOr(citation.Find(selDate).First(), noDateAvailable),
		Link:      titleLink(title, origin),
	}
}

// textOr returns the trimmed text of sel, or fallback when sel matched nothing.
func textOr(sel *goquery.Selection, fallback string) string {
	if sel.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(sel.Text())
}

func titleLink(title *goquery.Selection, origin string) string {
	if title.Length() == 0 {
		return missingLink
	}
	href, ok := title.Find("a").First().Attr("href")
	if !ok {
		return missingLink
	}
	return origin + href
}

func citationAuthors(citation *goquery.Selection) []string {
	authors := []string{}
	container := citation.Find(selAuthorList).First()
	if container.Length() == 0 {
		return authors
	}
	container.Find(selAuthor).Each(func(_ int, author *goquery.Selection) {
		authors = append(authors, strings.TrimSpace(author.Text()))
	})
	return authors
}

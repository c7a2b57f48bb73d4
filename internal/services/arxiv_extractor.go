package services

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"research_hub_go_backend/internal/models"
)

const (
	arxivDateLength = len("2006-01-02")
	missingLink     = "#"
)

// atomFeed is the subset of an arXiv Atom query response we read. Required
// elements are pointers so a missing element can be told apart from an empty one.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     *string `xml:"title"`
	Summary   *string `xml:"summary"`
	Published *string `xml:"published"`
	Authors   []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Links []atomLink `xml:"link"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// ExtractArxivRecords parses an arXiv Atom query response into one record per
// feed entry. Records are not yet normalized.
func ExtractArxivRecords(r io.Reader) ([]models.PaperRecord, error) {
	var feed atomFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv feed: %w", err)
	}

	records := make([]models.PaperRecord, 0, len(feed.Entries))
	for i, entry := range feed.Entries {
		if err := entry.validate(); err != nil {
			return nil, fmt.Errorf("arXiv entry %d: %w", i+1, err)
		}

		authors := make([]string, 0, len(entry.Authors))
		for _, author := range entry.Authors {
			authors = append(authors, strings.TrimSpace(author.Name))
		}

		records = append(records, models.PaperRecord{
			Title:     strings.TrimSpace(*entry.Title),
			Summary:   strings.TrimSpace(*entry.Summary),
			Authors:   authors,
			Published: datePrefix(*entry.Published),
			Link:      alternateLink(entry.Links),
		})
	}
	return records, nil
}

func (e atomEntry) validate() error {
	switch {
	case e.Title == nil:
		return errors.New("missing <title>")
	case e.Summary == nil:
		return errors.New("missing <summary>")
	case e.Published == nil:
		return errors.New("missing <published>")
	}
	return nil
}

// datePrefix keeps the ISO date part of an Atom timestamp.
func datePrefix(published string) string {
	published = strings.TrimSpace(published)
	if len(published) > arxivDateLength {
		return published[:arxivDateLength]
	}
	return published
}

// alternateLink returns the first link explicitly marked rel="alternate".
func alternateLink(links []atomLink) string {
	for _, link := range links {
		if link.Rel == "alternate" {
			return link.Href
		}
	}
	return missingLink
}

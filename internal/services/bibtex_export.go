package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/nickng/bibtex"

	"research_hub_go_backend/internal/models"
)

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// ExportBibTeX renders records as @misc entries, one per record, in order.
func ExportBibTeX(records []models.PaperRecord) string {
	bib := bibtex.NewBibTex()
	used := make(map[string]int)

	for _, r := range records {
		year := yearPattern.FindString(r.Published)

		entry := bibtex.NewBibEntry("misc", citeKey(r, year, used))
		addField(entry, "title", r.Title)
		addField(entry, "author", strings.Join(r.Authors, " and "))
		addField(entry, "year", year)
		if r.Link != missingLink {
			addField(entry, "url", r.Link)
		}
		addField(entry, "abstract", r.Summary)
		addField(entry, "howpublished", r.Source)
		bib.AddEntry(entry)
	}

	return bib.String()
}

func addField(entry *bibtex.BibEntry, name, value string) {
	value = sanitizeBibValue(value)
	if value == "" {
		return
	}
	entry.AddField(name, bibtex.NewBibConst(value))
}

// sanitizeBibValue drops braces, which would unbalance the entry, and folds
// whitespace runs into single spaces.
func sanitizeBibValue(s string) string {
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// citeKey builds "<surname><year>" from the first author, falling back to the
// source name, and disambiguates repeats with a numeric suffix.
func citeKey(r models.PaperRecord, year string, used map[string]int) string {
	base := ""
	if len(r.Authors) > 0 {
		if parts := strings.Fields(r.Authors[0]); len(parts) > 0 {
			base = keyChars(parts[len(parts)-1])
		}
	}
	if base == "" {
		base = keyChars(r.Source)
	}
	if base == "" {
		base = "paper"
	}
	key := base + year

	used[key]++
	if n := used[key]; n > 1 {
		return fmt.Sprintf("%s_%d", key, n)
	}
	return key
}

func keyChars(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

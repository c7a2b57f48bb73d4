package services

import "research_hub_go_backend/internal/models"

const (
	summaryLimit    = 300
	summaryEllipsis = "..."
)

// TruncateSummary cuts s to summaryLimit characters and appends an ellipsis.
// Shorter summaries are returned unchanged, so truncating twice is a no-op.
func TruncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= summaryLimit {
		return s
	}
	return string(runes[:summaryLimit]) + summaryEllipsis
}

// NormalizeRecords returns copies of records tagged with sourceName and with
// summaries truncated. Order is preserved; nothing is sorted or deduplicated.
func NormalizeRecords(records []models.PaperRecord, sourceName string) []models.PaperRecord {
	normalized := make([]models.PaperRecord, 0, len(records))
	for _, r := range records {
		authors := make([]string, len(r.Authors))
		copy(authors, r.Authors)

		normalized = append(normalized, models.PaperRecord{
			Title:     r.Title,
			Summary:   TruncateSummary(r.Summary),
			Authors:   authors,
			Published: r.Published,
			Link:      r.Link,
			Source:    sourceName,
		})
	}
	return normalized
}

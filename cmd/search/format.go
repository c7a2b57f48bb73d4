package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"research_hub_go_backend/internal/models"
	"research_hub_go_backend/internal/services"
)

const (
	formatTable  = "table"
	formatJSON   = "json"
	formatBibTeX = "bibtex"
)

func validFormat(format string) bool {
	switch format {
	case formatTable, formatJSON, formatBibTeX:
		return true
	}
	return false
}

func writeResults(w io.Writer, results []models.PaperRecord, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]models.PaperRecord{"results": results})
	case formatBibTeX:
		_, err := io.WriteString(w, services.ExportBibTeX(results))
		return err
	default:
		writeTable(w, results)
		return nil
	}
}

func writeTable(w io.Writer, results []models.PaperRecord) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-12s  %s\n", "#", "Title", "Authors", "Published", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, r := range results {
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-12s  %s\n",
			i+1, truncate(r.Title, 60), formatAuthors(r.Authors), truncate(r.Published, 12), r.Source)
	}
	fmt.Fprintf(w, "\n%d results\n", len(results))
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

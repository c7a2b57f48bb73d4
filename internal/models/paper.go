package models

// Source names as they appear in the "source" field of a PaperRecord.
const (
	SourceNameArxiv   = "arXiv"
	SourceNameBiorxiv = "bioRxiv"
)

// PaperRecord is the uniform shape every upstream search hit is normalized into.
type PaperRecord struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Authors   []string `json:"authors"`
	Published string   `json:"published"`
	Link      string   `json:"link"`
	Source    string   `json:"source"`
}

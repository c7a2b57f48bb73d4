package services

import (
	"fmt"
	"strings"
)

const arxivFeedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <link href="http://arxiv.org/api/query?search_query=all:quantum" rel="self" type="application/atom+xml"/>
  <title type="html">ArXiv Query: search_query=all:quantum computing</title>
  <id>http://arxiv.org/api/cHxbiOdZaP56ODnBPIenZhzg5f8</id>
  <updated>2024-05-01T00:00:00-04:00</updated>
  <entry>
    <id>http://arxiv.org/abs/2401.00001v1</id>
    <updated>2024-01-03T10:00:00Z</updated>
    <published>2024-01-02T18:30:00Z</published>
    <title>
      Quantum Computing for Everyone
    </title>
    <summary>  A gentle introduction to qubits and gates.
    </summary>
    <author>
      <name>Alice Smith</name>
    </author>
    <author>
      <name>Bob Jones</name>
    </author>
    <link href="http://arxiv.org/abs/2401.00001v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2401.00001v1" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2401.00002v2</id>
    <updated>2024-02-01T00:00:00Z</updated>
    <published>2023-12-31T23:59:59Z</published>
    <title>Error Correction Without Links</title>
    <summary>%s</summary>
    <author>
      <name>Carol White</name>
    </author>
    <link title="pdf" href="http://arxiv.org/pdf/2401.00002v2" rel="related" type="application/pdf"/>
  </entry>
</feed>`

// longSummary is longer than the summary budget.
var longSummary = strings.Repeat("surface codes ", 40)

func arxivFeed() string {
	return fmt.Sprintf(arxivFeedFixture, longSummary)
}

const emptyArxivFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title type="html">ArXiv Query: search_query=all:zzzz</title>
  <id>http://arxiv.org/api/empty</id>
  <updated>2024-05-01T00:00:00-04:00</updated>
</feed>`

const biorxivCitationFull = `
<li class="search-result">
  <div class="highwire-article-citation highwire-citation-type-highwire-article">
    <div class="highwire-cite highwire-citation-biorxiv-article-pap-list">
      <span class="highwire-cite-title">
        <a href="/content/10.1101/2024.01.02.573001v1" class="highwire-cite-linked-title">
          CRISPR screens in budding yeast
        </a>
      </span>
      <div class="highwire-cite-authors">
        <span class="highwire-citation-authors">
          <span class="highwire-citation-author first">Jane Doe</span>,
          <span class="highwire-citation-author">John Roe</span>
        </span>
      </div>
      <div class="highwire-cite-metadata">
        <span class="highwire-cite-metadata-date"> Posted January 02, 2024. </span>
      </div>
      <div class="highwire-cite-snippet">
        We screen every gene.
      </div>
    </div>
  </div>
</li>`

const biorxivCitationBare = `
<li class="search-result">
  <div class="highwire-article-citation">
    <div class="highwire-cite"></div>
  </div>
</li>`

const biorxivCitationTitleNoHref = `
<li class="search-result">
  <div class="highwire-article-citation">
    <span class="highwire-cite-title">Untitled anchor <a name="x">here</a></span>
  </div>
</li>`

func biorxivPage(citations ...string) string {
	return `<!DOCTYPE html>
<html><head><title>bioRxiv search</title></head>
<body><ul class="highwire-search-results-list">` + strings.Join(citations, "\n") + `</ul></body></html>`
}

func numberedBiorxivCitation(n int) string {
	return fmt.Sprintf(`<div class="highwire-article-citation">
  <span class="highwire-cite-title"><a href="/content/%d">Paper %d</a></span>
</div>`, n, n)
}

package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://www.biorxiv.org"

func TestExtractBiorxivRecords(t *testing.T) {
	page := biorxivPage(biorxivCitationFull, biorxivCitationBare)

	records, err := ExtractBiorxivRecords(strings.NewReader(page), testOrigin)
	require.NoError(t, err)
	require.Len(t, records, 2)

	full := records[0]
	assert.Equal(t, "CRISPR screens in budding yeast", full.Title)
	assert.Equal(t, "https://www.biorxiv.org/content/10.1101/2024.01.02.573001v1", full.Link)
	assert.Equal(t, []string{"Jane Doe", "John Roe"}, full.Authors)
	assert.Equal(t, "Posted January 02, 2024.", full.Published)
	assert.Equal(t, "We screen every gene.", full.Summary)

	bare := records[1]
	assert.Equal(t, "No title available", bare.Title)
	assert.Equal(t, "#", bare.Link)
	assert.NotNil(t, bare.Authors)
	assert.Empty(t, bare.Authors, "missing author container yields an empty list")
	assert.Equal(t, "No date available", bare.Published)
	assert.Equal(t, "No abstract available", bare.Summary)
}

func TestExtractBiorxivRecords_TitleAnchorWithoutHref(t *testing.T) {
	records, err := ExtractBiorxivRecords(strings.NewReader(biorxivPage(biorxivCitationTitleNoHref)), testOrigin)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Untitled anchor here", records[0].Title)
	assert.Equal(t, "#", records[0].Link)
}

func TestExtractBiorxivRecords_CapsAtTen(t *testing.T) {
	var citations []string
	for i := 1; i <= 12; i++ {
		citations = append(citations, numberedBiorxivCitation(i))
	}

	records, err := ExtractBiorxivRecords(strings.NewReader(biorxivPage(citations...)), testOrigin)
	require.NoError(t, err)
	require.Len(t, records, 10)
	assert.Equal(t, "Paper 1", records[0].Title)
	assert.Equal(t, "Paper 10", records[9].Title)
	assert.Equal(t, "https://www.biorxiv.org/content/10", records[9].Link)
}

func TestExtractBiorxivRecords_NoCitations(t *testing.T) {
	records, err := ExtractBiorxivRecords(strings.NewReader(biorxivPage()), testOrigin)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

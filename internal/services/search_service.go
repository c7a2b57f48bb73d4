package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"research_hub_go_backend/internal/config"
	apperrors "research_hub_go_backend/internal/errors"
	"research_hub_go_backend/internal/models"
)

// Source selectors accepted by Search.
const (
	SourceArxiv   = "arxiv"
	SourceBiorxiv = "biorxiv"
)

const (
	arxivMaxResults     = 10
	defaultMaxBodyBytes = 10 << 20
)

// Upstreams holds the endpoints and client identity used for outbound calls.
type Upstreams struct {
	ArxivAPIURL      string
	BiorxivSearchURL string
	BiorxivOrigin    string
	BiorxivUserAgent string
}

// SearchService dispatches a query to one upstream repository and returns
// normalized records.
type SearchService struct {
	client       *http.Client
	upstreams    Upstreams
	maxBodyBytes int64
}

func NewSearchService(client *http.Client, upstreams Upstreams) *SearchService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SearchService{
		client:       client,
		upstreams:    upstreams,
		maxBodyBytes: defaultMaxBodyBytes,
	}
}

// NewSearchServiceFromConfig builds the service with a client whose timeout
// bounds every upstream call.
func NewSearchServiceFromConfig(cfg *config.Config) *SearchService {
	return NewSearchService(&http.Client{Timeout: cfg.UpstreamTimeout}, Upstreams{
		ArxivAPIURL:      cfg.ArxivAPIURL,
		BiorxivSearchURL: cfg.BiorxivSearchURL,
		BiorxivOrigin:    cfg.BiorxivOrigin,
		BiorxivUserAgent: cfg.BiorxivUserAgent,
	})
}

// Search validates the request, performs exactly one upstream call and
// returns the extracted records. Input problems come back as validation
// errors; network, status and parse failures as upstream errors.
func (s *SearchService) Search(ctx context.Context, query, source string) ([]models.PaperRecord, error) {
	if query == "" {
		return nil, apperrors.NewValidationError(apperrors.MsgQueryRequired)
	}

	start := time.Now()
	var (
		records []models.PaperRecord
		err     error
	)
	switch source {
	case SourceArxiv:
		records, err = s.searchArxiv(ctx, query)
	case SourceBiorxiv:
		records, err = s.searchBiorxiv(ctx, query)
	default:
		return nil, apperrors.NewValidationError(apperrors.MsgInvalidSource)
	}

	if err != nil {
		log.Warn().
			Err(err).
			Str("source", source).
			Str("query", query).
			Dur("duration", time.Since(start)).
			Msg("Search failed")
		return nil, apperrors.NewUpstreamError(err)
	}

	log.Info().
		Str("source", source).
		Str("query", query).
		Int("results", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Search completed")
	return records, nil
}

func (s *SearchService) searchArxiv(ctx context.Context, query string) ([]models.PaperRecord, error) {
	requestURL := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d",
		s.upstreams.ArxivAPIURL, url.QueryEscape(query), arxivMaxResults)

	body, err := s.fetch(ctx, requestURL, "")
	if err != nil {
		return nil, err
	}

	records, err := ExtractArxivRecords(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return NormalizeRecords(records, models.SourceNameArxiv), nil
}

func (s *SearchService) searchBiorxiv(ctx context.Context, query string) ([]models.PaperRecord, error) {
	requestURL := s.upstreams.BiorxivSearchURL + url.PathEscape(query)

	body, err := s.fetch(ctx, requestURL, s.upstreams.BiorxivUserAgent)
	if err != nil {
		return nil, err
	}

	records, err := ExtractBiorxivRecords(bytes.NewReader(body), s.upstreams.BiorxivOrigin)
	if err != nil {
		return nil, err
	}
	return NormalizeRecords(records, models.SourceNameBiorxiv), nil
}

// fetch performs a single GET and returns the body of a 2xx response.
func (s *SearchService) fetch(ctx context.Context, requestURL, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), requestURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > s.maxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes for url: %s", s.maxBodyBytes, requestURL)
	}
	return body, nil
}

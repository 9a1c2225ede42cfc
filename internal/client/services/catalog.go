package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/dmitrijs2005/lorekeeper/internal/client/client"
	"github.com/dmitrijs2005/lorekeeper/internal/logging"
)

// Catalog resolves resource collections exposed by the reference-data API.
//
// Every failure is logged at the point of detection; callers that drive the
// interactive loop only need to check for a nil result.
type Catalog interface {
	// DiscoverCollections fetches the API root and returns the collection
	// names, sorted lexicographically.
	DiscoverCollections(ctx context.Context) ([]string, error)

	// List fetches all item summaries of one collection.
	List(ctx context.Context, collection string) ([]any, error)

	// Get fetches the full record of one item, addressed by a free-text
	// identifier that is normalized to a URL slug.
	Get(ctx context.Context, collection string, identifier string) (any, error)
}

type catalogService struct {
	client  client.Client
	baseURL string
	log     logging.Logger
}

func NewCatalogService(c client.Client, baseURL string, log logging.Logger) Catalog {
	return &catalogService{client: c, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// Slugify normalizes a free-text identifier for use in a URL path segment:
// lowercased, with every single space replaced by a hyphen. Runs of spaces
// become runs of hyphens; nothing is collapsed.
func Slugify(identifier string) string {
	return strings.ReplaceAll(strings.ToLower(identifier), " ", "-")
}

func (s *catalogService) DiscoverCollections(ctx context.Context) ([]string, error) {
	s.log.Info(ctx, "connecting to API index", "url", s.baseURL)

	v, err := s.client.GetJSON(ctx, s.baseURL)
	if err != nil {
		s.log.Error(ctx, "could not fetch API index", "url", s.baseURL, "err", err)
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		err := fmt.Errorf("%w: API index response is not a JSON object", ErrFormat)
		s.log.Error(ctx, "could not read API index", "url", s.baseURL, "err", err)
		return nil, err
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	s.log.Info(ctx, "fetched endpoints", "count", len(names))
	return names, nil
}

func (s *catalogService) List(ctx context.Context, collection string) ([]any, error) {
	url := fmt.Sprintf("%s/%s", s.baseURL, collection)
	s.log.Info(ctx, "fetching list", "url", url)

	v, err := s.client.GetJSON(ctx, url)
	if err != nil {
		s.log.Error(ctx, "error fetching list", "url", url, "err", err)
		return nil, err
	}

	if m, ok := v.(map[string]any); ok {
		if results, ok := m["results"].([]any); ok {
			return results, nil
		}
	}

	// Some deployments return the item array at the top level instead of
	// wrapping it in "results". Tolerated, but flagged.
	if seq, ok := v.([]any); ok {
		s.log.Warn(ctx, "fetched list directly (no 'results' key found)", "url", url)
		return seq, nil
	}

	err = fmt.Errorf("%w: expected a JSON object with a 'results' list", ErrFormat)
	s.log.Error(ctx, "unexpected API response format for list", "url", url, "err", err)
	return nil, err
}

func (s *catalogService) Get(ctx context.Context, collection string, identifier string) (any, error) {
	slug := Slugify(identifier)
	url := fmt.Sprintf("%s/%s/%s", s.baseURL, collection, slug)
	s.log.Info(ctx, "fetching details", "url", url)

	v, err := s.client.GetJSON(ctx, url)
	if err != nil {
		var se *client.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			nfErr := fmt.Errorf("%w: no %s named %q (tried slug %q)", ErrNotFound, collection, identifier, slug)
			s.log.Error(ctx, "item not found",
				"collection", collection,
				"identifier", identifier,
				"slug", slug,
				"hint", fmt.Sprintf("list all %s by running: %s", collection, collection),
			)
			return nil, nfErr
		}
		s.log.Error(ctx, "error fetching details", "url", url, "err", err)
		return nil, err
	}

	return v, nil
}

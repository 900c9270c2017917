package suggest

import (
	"strings"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// EmptyState tells a host which placeholder to render for a result list.
type EmptyState int

const (
	// EmptyNone means there is at least one result.
	EmptyNone EmptyState = iota
	// EmptyTypeToSearch means nothing to show and nothing typed yet.
	EmptyTypeToSearch
	// EmptyNoMatches means a query was typed and nothing matched.
	EmptyNoMatches
)

func (s EmptyState) String() string {
	switch s {
	case EmptyTypeToSearch:
		return "type to search"
	case EmptyNoMatches:
		return "no results"
	default:
		return ""
	}
}

// EmptyStateFor classifies a result list for the given query.
func EmptyStateFor(query string, results []entity.SearchResult) EmptyState {
	if len(results) > 0 {
		return EmptyNone
	}
	if strings.TrimSpace(query) == "" {
		return EmptyTypeToSearch
	}
	return EmptyNoMatches
}

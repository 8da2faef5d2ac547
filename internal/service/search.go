package service

import (
	"context"
	"strings"
	"time"

	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/repo"
	"github.com/Skotchmaster/retail_shop/internal/util"
)

type SearchService struct {
	Repo *repo.GormRepo
}

// AdminSearch is the staff lookup path; it leaves no audit trail.
func (s *SearchService) AdminSearch(ctx context.Context, query string) ([]models.Product, error) {
	return s.Repo.AdminSearch(ctx, query)
}

// buildTerms turns the raw query into the OR-union term list for customer
// search: nothing for an empty query, the single word as-is, or the full
// phrase followed by each distinct token in first-occurrence order.
func buildTerms(query string) []string {
	phrase := strings.ToLower(strings.TrimSpace(query))
	if phrase == "" {
		return nil
	}
	words := strings.Fields(phrase)
	if len(words) <= 1 {
		return []string{phrase}
	}

	terms := []string{phrase}
	seen := map[string]struct{}{phrase: {}}
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
	}
	return terms
}

// CustomerSearch returns one page of matches plus the total count, and
// always records (cid, sessionNo, ts, raw query), even for an empty
// query that matches nothing.
func (s *SearchService) CustomerSearch(ctx context.Context, query string, cid, sessionNo int, ts time.Time, page, pageSize int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = util.DefaultPageSize
	}

	rec := models.SearchRecord{CID: cid, SessionNo: sessionNo, TS: ts, Query: query}
	return s.Repo.CustomerSearch(ctx, rec, buildTerms(query), page, pageSize)
}

package repo

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

// keywordCond is the one matching primitive both search paths share:
// a case-insensitive substring test over name and descr.
const keywordCond = "LOWER(name) LIKE ? OR LOWER(descr) LIKE ?"

func likePattern(term string) string {
	return "%" + term + "%"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (r *GormRepo) AllProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("pid").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) matchTerm(ctx context.Context, term string) ([]models.Product, error) {
	like := likePattern(term)
	var items []models.Product
	if err := r.DB.WithContext(ctx).Where(keywordCond, like, like).Order("pid").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AdminSearch resolves a staff query without recording it anywhere.
//
// An empty query lists the whole catalog by pid. An all-digit query tries
// an exact pid match and, only when that finds nothing, falls back to a
// keyword match on the digit string. A multi-word query emits phrase
// matches first, then matches for each distinct token in original order;
// a pid already emitted is never repeated. A single word is a plain
// keyword match.
func (r *GormRepo) AdminSearch(ctx context.Context, query string) ([]models.Product, error) {
	phrase := strings.ToLower(strings.TrimSpace(query))
	if phrase == "" {
		return r.AllProducts(ctx)
	}

	results := make([]models.Product, 0)
	seen := make(map[int]struct{})
	add := func(items []models.Product) {
		for _, p := range items {
			if _, ok := seen[p.PID]; ok {
				continue
			}
			seen[p.PID] = struct{}{}
			results = append(results, p)
		}
	}

	if isDigits(phrase) {
		if pid, err := strconv.Atoi(phrase); err == nil {
			var exact []models.Product
			if err := r.DB.WithContext(ctx).Where("pid = ?", pid).Order("pid").Find(&exact).Error; err != nil {
				return nil, err
			}
			if len(exact) > 0 {
				// exact pid wins outright, no keyword merge
				add(exact)
				return results, nil
			}
		}
		items, err := r.matchTerm(ctx, phrase)
		if err != nil {
			return nil, err
		}
		add(items)
		return results, nil
	}

	words := strings.Fields(phrase)
	if len(words) > 1 {
		items, err := r.matchTerm(ctx, phrase)
		if err != nil {
			return nil, err
		}
		add(items)

		seenWords := make(map[string]struct{})
		for _, w := range words {
			if _, ok := seenWords[w]; ok {
				continue
			}
			seenWords[w] = struct{}{}
			wItems, err := r.matchTerm(ctx, w)
			if err != nil {
				return nil, err
			}
			add(wItems)
		}
		return results, nil
	}

	items, err := r.matchTerm(ctx, phrase)
	if err != nil {
		return nil, err
	}
	add(items)
	return results, nil
}

// CustomerSearch runs one OR-union query over the given terms, returning the
// requested page plus the total match count, and appends the audit record in
// the same transaction. The record is written even when terms is empty.
func (r *GormRepo) CustomerSearch(ctx context.Context, rec models.SearchRecord, terms []string, page, pageSize int) ([]models.Product, int64, error) {
	var (
		items []models.Product
		total int64
	)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(terms) > 0 {
			conds := make([]string, len(terms))
			args := make([]interface{}, 0, len(terms)*2)
			for i, t := range terms {
				conds[i] = "(" + keywordCond + ")"
				like := likePattern(t)
				args = append(args, like, like)
			}
			where := strings.Join(conds, " OR ")

			if err := tx.Model(&models.Product{}).Where(where, args...).Count(&total).Error; err != nil {
				return err
			}

			offset := 0
			if page > 1 {
				offset = (page - 1) * pageSize
			}
			if err := tx.Where(where, args...).Order("pid").Limit(pageSize).Offset(offset).Find(&items).Error; err != nil {
				return err
			}
		}

		return tx.Create(&rec).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

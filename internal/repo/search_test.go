package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

func pids(items []models.Product) []int {
	out := make([]int, len(items))
	for i, p := range items {
		out[i] = p.PID
	}
	return out
}

func TestAdminSearchEmptyReturnsAllByPID(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	items, err := r.AdminSearch(context.Background(), "   ")
	require.NoError(t, err)
	require.Equal(t, []int{2001, 2002, 2003, 2004, 2005}, pids(items))
}

func TestAdminSearchExactPIDWins(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	// pid 2003 exists, and "2003" also appears in product 2005's name;
	// the exact match must win alone with no keyword merge
	items, err := r.AdminSearch(context.Background(), "2003")
	require.NoError(t, err)
	require.Equal(t, []int{2003}, pids(items))
}

func TestAdminSearchNumericFallsBackToKeyword(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	// "200" is no pid; keyword fallback hits "monitor stand 2003"
	items, err := r.AdminSearch(context.Background(), "200")
	require.NoError(t, err)
	require.Equal(t, []int{2005}, pids(items))

	items, err = r.AdminSearch(context.Background(), "999999")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAdminSearchPhraseBeforeTokens(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	// phrase match (2002) first, then token matches ("keyboard" adds 2004),
	// no pid repeated
	items, err := r.AdminSearch(context.Background(), "Mechanical Keyboard")
	require.NoError(t, err)
	require.Equal(t, []int{2002, 2004}, pids(items))
}

func TestAdminSearchDuplicateTokensSkipped(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	items, err := r.AdminSearch(context.Background(), "keyboard keyboard")
	require.NoError(t, err)
	require.Equal(t, []int{2002, 2004}, pids(items))
}

func TestAdminSearchSingleToken(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	items, err := r.AdminSearch(context.Background(), "  USB ")
	require.NoError(t, err)
	require.Equal(t, []int{2003}, pids(items))
}

func TestAdminSearchWritesNoAudit(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	ctx := context.Background()
	for _, q := range []string{"", "2003", "mechanical keyboard", "usb"} {
		_, err := r.AdminSearch(ctx, q)
		require.NoError(t, err)
	}
	require.Zero(t, searchCount(t, r))
}

func customerSearch(t *testing.T, r *GormRepo, query string, page, size int) ([]models.Product, int64) {
	t.Helper()

	rec := models.SearchRecord{CID: 1, SessionNo: 7, TS: time.Now(), Query: query}
	terms := []string{}
	// term construction lives in the service; tests at this level pass the
	// already-built list
	switch query {
	case "":
	case "mechanical keyboard":
		terms = []string{"mechanical keyboard", "mechanical", "keyboard"}
	default:
		terms = []string{query}
	}
	items, total, err := r.CustomerSearch(context.Background(), rec, terms, page, size)
	require.NoError(t, err)
	return items, total
}

func TestCustomerSearchAlwaysRecords(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	items, total := customerSearch(t, r, "", 1, 5)
	require.Empty(t, items)
	require.Zero(t, total)
	require.EqualValues(t, 1, searchCount(t, r))

	customerSearch(t, r, "usb", 1, 5)
	require.EqualValues(t, 2, searchCount(t, r))
}

func TestCustomerSearchUnionCountAndPaging(t *testing.T) {
	r := newTestRepo(t)
	seedProducts(t, r)

	items, total := customerSearch(t, r, "mechanical keyboard", 1, 1)
	require.EqualValues(t, 2, total)
	require.Equal(t, []int{2002}, pids(items))

	items, total = customerSearch(t, r, "mechanical keyboard", 2, 1)
	require.EqualValues(t, 2, total)
	require.Equal(t, []int{2004}, pids(items))
}

package usecase

import (
	"strconv"
	"strings"

	"github.com/shandysiswandi/goproduct/internal/product/entity"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListParams holds the list query. Empty Category or Search disables that step.
type ListParams struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type Pagination struct {
	CurrentPage  int
	ItemsPerPage int
	TotalItems   int
	TotalPages   int
	NextPage     *int
	PrevPage     *int
}

type ListResult struct {
	Data       []entity.Product
	Pagination Pagination
}

// ParsePositiveInt reads the leading base-10 integer of raw, so "2.7" is 2 and
// "10items" is 10. No leading digits, overflow or a value below 1 yields def.
func ParsePositiveInt(raw string, def int) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return def
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Process filters by category, then by search term, then cuts the requested page.
// The input slice is not modified.
func Process(products []entity.Product, params ListParams) ListResult {
	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	term := strings.ToLower(params.Search)
	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if params.Category != "" && !strings.EqualFold(p.Category, params.Category) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	data := make([]entity.Product, 0, min(limit, total))
	if page <= totalPages {
		start := (page - 1) * limit
		end := total
		if limit < total-start {
			end = start + limit
		}
		data = append(data, matched[start:end]...)
	}

	pagination := Pagination{
		CurrentPage:  page,
		ItemsPerPage: limit,
		TotalItems:   total,
		TotalPages:   totalPages,
	}
	if page < totalPages {
		next := page + 1
		pagination.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		pagination.PrevPage = &prev
	}

	return ListResult{Data: data, Pagination: pagination}
}

// Stats groups products by category in first-seen order. Prices are summed as
// decimals so totals like 0.1+0.2 come out exact.
func Stats(products []entity.Product) []entity.CategoryStats {
	stats := make([]entity.CategoryStats, 0)
	totals := make([]decimal.Decimal, 0)
	index := make(map[string]int)

	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(stats)
			index[p.Category] = i
			stats = append(stats, entity.CategoryStats{Category: p.Category})
			totals = append(totals, decimal.Zero)
		}

		stats[i].ProductCount++
		totals[i] = totals[i].Add(decimal.NewFromFloat(p.Price))
		if p.InStock {
			stats[i].InStockCount++
		}
	}

	for i := range stats {
		stats[i].TotalValue = totals[i].InexactFloat64()
	}

	return stats
}

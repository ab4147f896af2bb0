package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mwhitby/rolodex/internal/directory"
)

// View is the fully derived display state. It is recomputed from
// scratch on every input change; with a directory this small the
// O(n log n)-per-keystroke cost is an accepted tradeoff over
// incremental maintenance.
type View struct {
	FilteredSorted []directory.Record
	PageCount      int
	PageItems      []directory.Record
}

// Derive runs the pipeline: filter by search text and company, sort by
// name with locale-aware collation, then slice out the requested page.
// It is a pure function of its inputs and holds no state across calls.
func Derive(items []directory.Record, q Query) View {
	filtered := filter(items, q.Search, q.Company)
	sortByName(filtered, q.Sort)

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 1
	}
	pageCount := (len(filtered) + pageSize - 1) / pageSize
	page := ClampPage(q.Page, pageCount)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return View{
		FilteredSorted: filtered,
		PageCount:      pageCount,
		PageItems:      filtered[start:end],
	}
}

// filter keeps records whose name contains the search text
// (case-insensitive substring) and whose company matches the filter
// (case-insensitive equality; empty filter matches everything).
func filter(items []directory.Record, search, company string) []directory.Record {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]directory.Record, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if company != "" && !strings.EqualFold(item.Company.Name, company) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func sortByName(items []directory.Record, dir SortDirection) {
	c := newCollator()
	sort.SliceStable(items, func(i, j int) bool {
		cmp := c.CompareString(items[i].Name, items[j].Name)
		if dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

// Companies returns the distinct company names across the directory in
// collated order, for cycling the company filter. Names that differ
// only in case are collapsed to their first occurrence.
func Companies(items []directory.Record) []string {
	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Company.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	c := newCollator()
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
	return names
}

// newCollator builds the name comparator. Collators carry internal
// buffers, so each derivation uses its own rather than sharing one.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

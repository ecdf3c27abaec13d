package store

import (
	"context"
	"sort"
	"strings"

	"github.com/ajramos/promptvault/internal/prompts"
)

// ListPrompts returns the merged prompt set (customs first, then the
// built-in defaults unless excluded), filtered, sorted and paginated. A
// failed storage read degrades to the default set alone with Err set; it
// never reports a hard failure.
func (s *PromptStore) ListPrompts(ctx context.Context, category string, opts ListOptions) ListResult {
	custom, err := s.loadPrompts(ctx)
	if err != nil {
		defaults := prompts.Defaults()
		return ListResult{Prompts: defaults, Total: len(defaults), Err: err.Error()}
	}

	all := append([]prompts.Prompt(nil), custom...)
	if !opts.ExcludeDefaults {
		all = append(all, prompts.Defaults()...)
	}

	if category != "" && category != "all" {
		filtered := all[:0]
		for _, p := range all {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}

	if opts.Search != "" {
		query := strings.ToLower(opts.Search)
		filtered := all[:0]
		for _, p := range all {
			if matchesQuery(p, query) {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}

	sortPrompts(all, opts.SortBy, opts.SortOrder)

	total := len(all)

	if opts.Limit > 0 {
		start := opts.Offset
		if start > len(all) {
			start = len(all)
		}
		end := start + opts.Limit
		if end > len(all) {
			end = len(all)
		}
		all = all[start:end]
	}

	return ListResult{Prompts: all, Total: total}
}

func matchesQuery(p prompts.Prompt, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Text), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// sortValue extracts the numeric sort key; fields that are missing or not
// numeric sort as 0.
func sortValue(p prompts.Prompt, field string) int64 {
	switch field {
	case "", "createdAt":
		return p.CreatedAt
	case "updatedAt":
		return p.UpdatedAt
	case "usageCount":
		return int64(p.UsageCount)
	default:
		return 0
	}
}

// sortPrompts orders the merged set, descending by default. The sort is
// stable so equal keys keep their customs-first concatenation order.
func sortPrompts(list []prompts.Prompt, sortBy, sortOrder string) {
	asc := sortOrder == "asc"
	sort.SliceStable(list, func(i, j int) bool {
		a, b := sortValue(list[i], sortBy), sortValue(list[j], sortBy)
		if asc {
			return a < b
		}
		return a > b
	})
}

// GetPromptByID searches the merged, unfiltered list (defaults included)
// and returns nil when the id is absent. There is no direct storage lookup
// by id.
func (s *PromptStore) GetPromptByID(ctx context.Context, id string) *prompts.Prompt {
	res := s.ListPrompts(ctx, "", ListOptions{})
	for i := range res.Prompts {
		if res.Prompts[i].ID == id {
			p := res.Prompts[i]
			return &p
		}
	}
	return nil
}

// ListFavorites returns the raw favorites collection, empty on read
// failure or absence.
func (s *PromptStore) ListFavorites(ctx context.Context) []prompts.Favorite {
	favorites, err := s.loadFavorites(ctx)
	if err != nil || favorites == nil {
		return []prompts.Favorite{}
	}
	return favorites
}

// ListHistory returns the most-recent-first slice of history. A limit of
// zero or less returns the full list.
func (s *PromptStore) ListHistory(ctx context.Context, limit int) []prompts.HistoryEntry {
	history, err := s.loadHistory(ctx)
	if err != nil || history == nil {
		return []prompts.HistoryEntry{}
	}
	if limit > 0 && limit < len(history) {
		return history[:limit]
	}
	return history
}

// ListCategories groups the merged prompt set by category, labelling each
// entry in the given language. Categories appear in first-seen order of
// the merged list so the result is deterministic.
func (s *PromptStore) ListCategories(ctx context.Context, lang string) []prompts.CategoryInfo {
	res := s.ListPrompts(ctx, "", ListOptions{})

	counts := make(map[string]int)
	var order []string
	for _, p := range res.Prompts {
		cat := p.Category
		if cat == "" {
			cat = "general"
		}
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}

	out := make([]prompts.CategoryInfo, 0, len(order))
	for _, cat := range order {
		out = append(out, prompts.CategoryInfo{
			ID:    cat,
			Name:  prompts.CategoryName(lang, cat),
			Count: counts[cat],
		})
	}
	return out
}

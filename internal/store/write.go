package store

import (
	"context"
	"strings"

	"github.com/ajramos/promptvault/internal/prompts"
)

// SavePrompt validates and prepends a new custom prompt, newest first.
// Title and text must be non-empty (whitespace-only passes validation
// and is trimmed on the way in, matching how the popup behaves). A
// missing id is minted, a missing category defaults to "general".
// Bookkeeping fields are always reset: a new record starts with zero
// usage, no favorite flag, and both timestamps at now.
func (s *PromptStore) SavePrompt(ctx context.Context, p prompts.Prompt) OpResult {
	if p.Title == "" || p.Text == "" {
		return fail("title and text are required")
	}

	p.Title = strings.TrimSpace(p.Title)
	p.Text = strings.TrimSpace(p.Text)
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.Category == "" {
		p.Category = "general"
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	nowMs := s.now().UnixMilli()
	p.CreatedAt = nowMs
	p.UpdatedAt = nowMs
	p.UsageCount = 0
	p.IsFavorite = false
	p.IsDefault = false

	s.local.Lock()
	defer s.local.Unlock()

	list, err := s.loadPrompts(ctx)
	if err != nil {
		return failErr(err)
	}
	list = append([]prompts.Prompt{p}, list...)
	if err := s.storePrompts(ctx, list); err != nil {
		return failErr(err)
	}
	return okID(p.ID)
}

// UpdatePrompt applies a partial update to a custom prompt. Default
// prompts are read-only and report failure; so does an unknown id.
func (s *PromptStore) UpdatePrompt(ctx context.Context, id string, update PromptUpdate) OpResult {
	if prompts.IsDefaultID(id) {
		return fail("default prompts cannot be modified")
	}

	s.local.Lock()
	defer s.local.Unlock()

	list, err := s.loadPrompts(ctx)
	if err != nil {
		return failErr(err)
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		update.apply(&list[i])
		list[i].UpdatedAt = s.now().UnixMilli()
		if err := s.storePrompts(ctx, list); err != nil {
			return failErr(err)
		}
		return okID(id)
	}
	return fail("prompt not found")
}

// DeletePrompt removes a custom prompt and cascades the removal to the
// favorites collection. Deleting an absent id is a no-op, not an error;
// the cascade still runs, so a favorite that outlived its prompt (or a
// favorited default, which is never in the custom collection) gets
// cleaned up too.
func (s *PromptStore) DeletePrompt(ctx context.Context, id string) OpResult {
	s.local.Lock()
	list, err := s.loadPrompts(ctx)
	if err != nil {
		s.local.Unlock()
		return failErr(err)
	}
	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) != len(list) {
		if err := s.storePrompts(ctx, kept); err != nil {
			s.local.Unlock()
			return failErr(err)
		}
	}
	s.local.Unlock()

	s.RemoveFromFavorites(ctx, id)
	return ok()
}

// AddToFavorites stores a shallow copy of the prompt in the synced
// favorites collection and mirrors isFavorite onto the custom prompt when
// one exists. Adding an already-favorited id succeeds without duplicating
// the entry. Default prompts may be favorited; only the copy is stored.
func (s *PromptStore) AddToFavorites(ctx context.Context, id string) OpResult {
	p := s.GetPromptByID(ctx, id)
	if p == nil {
		return fail("prompt not found")
	}

	s.synced.Lock()
	favorites, err := s.loadFavorites(ctx)
	if err != nil {
		s.synced.Unlock()
		return failErr(err)
	}
	already := false
	for _, f := range favorites {
		if f.ID == id {
			already = true
			break
		}
	}
	if !already {
		favorites = append([]prompts.Favorite{prompts.NewFavorite(*p, s.now().UnixMilli())}, favorites...)
		if err := s.storeFavorites(ctx, favorites); err != nil {
			s.synced.Unlock()
			return failErr(err)
		}
	}
	s.synced.Unlock()

	s.mirrorFavoriteFlag(ctx, id, true)
	return okID(id)
}

// RemoveFromFavorites drops the id from the favorites collection and
// clears the mirrored flag. Removing an absent id succeeds.
func (s *PromptStore) RemoveFromFavorites(ctx context.Context, id string) OpResult {
	s.synced.Lock()
	favorites, err := s.loadFavorites(ctx)
	if err != nil {
		s.synced.Unlock()
		return failErr(err)
	}
	kept := favorites[:0]
	for _, f := range favorites {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) != len(favorites) {
		if err := s.storeFavorites(ctx, kept); err != nil {
			s.synced.Unlock()
			return failErr(err)
		}
	}
	s.synced.Unlock()

	s.mirrorFavoriteFlag(ctx, id, false)
	return ok()
}

// mirrorFavoriteFlag keeps the denormalized isFavorite bit on the custom
// prompt in step with favorites membership. Missing prompts (defaults,
// orphaned favorites) are fine; the favorites collection is the source of
// truth for membership.
func (s *PromptStore) mirrorFavoriteFlag(ctx context.Context, id string, fav bool) {
	s.local.Lock()
	defer s.local.Unlock()

	list, err := s.loadPrompts(ctx)
	if err != nil {
		return
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].IsFavorite == fav {
			return
		}
		list[i].IsFavorite = fav
		s.storePrompts(ctx, list)
		return
	}
}

// AddToHistory prepends an entry to the history log, evicting the oldest
// entries past the bound. The entry text is required; id and timestamp
// are filled in when missing.
func (s *PromptStore) AddToHistory(ctx context.Context, e prompts.HistoryEntry) OpResult {
	if e.Text == "" {
		return fail("history text is required")
	}
	if e.ID == "" {
		e.ID = s.newID()
	}
	if e.Timestamp == 0 {
		e.Timestamp = s.now().UnixMilli()
	}

	s.local.Lock()
	defer s.local.Unlock()

	history, err := s.loadHistory(ctx)
	if err != nil {
		return failErr(err)
	}
	history = append([]prompts.HistoryEntry{e}, history...)
	if len(history) > MaxHistory {
		history = history[:MaxHistory]
	}
	if err := s.storeHistory(ctx, history); err != nil {
		return failErr(err)
	}
	return okID(e.ID)
}

// ClearHistory removes the whole history collection.
func (s *PromptStore) ClearHistory(ctx context.Context) OpResult {
	s.local.Lock()
	defer s.local.Unlock()

	if err := s.local.Remove(ctx, KeyHistory); err != nil {
		return failErr(err)
	}
	return ok()
}

// IncrementUsage bumps the usage counter of a custom prompt. Defaults and
// unknown ids are silently ignored; usage tracking is advisory.
func (s *PromptStore) IncrementUsage(ctx context.Context, id string) {
	if prompts.IsDefaultID(id) {
		return
	}

	s.local.Lock()
	defer s.local.Unlock()

	list, err := s.loadPrompts(ctx)
	if err != nil {
		return
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].UsageCount++
		s.storePrompts(ctx, list)
		return
	}
}

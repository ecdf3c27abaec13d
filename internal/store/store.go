package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ajramos/promptvault/internal/kv"
	"github.com/ajramos/promptvault/internal/prompts"
)

// Storage keys, one collection per key. Settings live in the synced
// partition but are owned by the config manager, not this store.
const (
	KeyPrompts   = "customPrompts"
	KeyFavorites = "favoritePrompts"
	KeyHistory   = "promptHistory"
	KeySettings  = "settings"
)

// MaxHistory bounds the history collection; inserting past the bound
// evicts the oldest entries one at a time.
const MaxHistory = 100

// CacheTTL is how long a read of prompts/favorites may be served from the
// in-memory shadow cache. Every write invalidates the cache, so the TTL
// only limits staleness against out-of-process writers.
const CacheTTL = 5 * time.Second

// PromptStore owns the four collections (custom prompts, favorites,
// history, settings) across the two storage partitions and merges the
// built-in default prompts into read paths. All mutation of the
// underlying keys goes through this store, which is what makes the
// derived cache safe to maintain.
type PromptStore struct {
	local  *kv.Store
	synced *kv.Store
	cache  *ttlCache
	now    func() time.Time
	newID  func() string
}

// New creates a prompt store over the two partitions.
func New(p *kv.Partitions) *PromptStore {
	return &PromptStore{
		local:  p.Local,
		synced: p.Synced,
		cache:  &ttlCache{ttl: CacheTTL},
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// OpResult is the structured outcome of a write operation. Failures are
// reported here rather than by raising an error past the store boundary.
type OpResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok() OpResult { return OpResult{Success: true} }

func okID(id string) OpResult { return OpResult{Success: true, ID: id} }

func fail(msg string) OpResult { return OpResult{Success: false, Error: msg} }

func failErr(err error) OpResult { return OpResult{Success: false, Error: err.Error()} }

// ListResult carries a page of prompts plus the total count after
// filtering and before slicing. Err is set when the storage read failed
// and the result degraded to the default set alone.
type ListResult struct {
	Prompts []prompts.Prompt `json:"prompts"`
	Total   int              `json:"total"`
	Err     string           `json:"error,omitempty"`
}

// ImportResult reports how many prompts an import added.
type ImportResult struct {
	Success  bool   `json:"success"`
	Imported int    `json:"imported"`
	Error    string `json:"error,omitempty"`
}

// ListOptions controls filtering, ordering and pagination of ListPrompts.
// The zero value includes defaults, sorts by createdAt descending, and
// returns everything.
type ListOptions struct {
	ExcludeDefaults bool
	SortBy          string // createdAt (default), updatedAt, usageCount
	SortOrder       string // "desc" (default) or "asc"
	Search          string
	Limit           int
	Offset          int
}

// PromptUpdate is a partial prompt: only non-nil fields are applied.
type PromptUpdate struct {
	Title       *string
	Text        *string
	Category    *string
	Description *string
	Tags        *[]string
	UsageCount  *int
	IsFavorite  *bool
}

func (u PromptUpdate) apply(p *prompts.Prompt) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Text != nil {
		p.Text = *u.Text
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.UsageCount != nil {
		p.UsageCount = *u.UsageCount
	}
	if u.IsFavorite != nil {
		p.IsFavorite = *u.IsFavorite
	}
}

// ttlCache shadows the most recent read of the prompts and favorites
// collections. It is owned by the store instance; every write path calls
// invalidate so the next read reflects the write.
type ttlCache struct {
	mu  sync.Mutex
	ttl time.Duration

	prompts   []prompts.Prompt
	promptsAt time.Time

	favorites   []prompts.Favorite
	favoritesAt time.Time
}

func (c *ttlCache) getPrompts() ([]prompts.Prompt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.promptsAt.IsZero() || time.Since(c.promptsAt) > c.ttl {
		return nil, false
	}
	return append([]prompts.Prompt(nil), c.prompts...), true
}

func (c *ttlCache) setPrompts(list []prompts.Prompt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append([]prompts.Prompt(nil), list...)
	c.promptsAt = time.Now()
}

func (c *ttlCache) getFavorites() ([]prompts.Favorite, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.favoritesAt.IsZero() || time.Since(c.favoritesAt) > c.ttl {
		return nil, false
	}
	return append([]prompts.Favorite(nil), c.favorites...), true
}

func (c *ttlCache) setFavorites(list []prompts.Favorite) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.favorites = append([]prompts.Favorite(nil), list...)
	c.favoritesAt = time.Now()
}

func (c *ttlCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = nil
	c.favorites = nil
	c.promptsAt = time.Time{}
	c.favoritesAt = time.Time{}
}

// loadPrompts reads the raw custom-prompts collection (no defaults).
func (s *PromptStore) loadPrompts(ctx context.Context) ([]prompts.Prompt, error) {
	if cached, hit := s.cache.getPrompts(); hit {
		return cached, nil
	}
	var list []prompts.Prompt
	if err := s.loadJSON(ctx, s.local, KeyPrompts, &list); err != nil {
		return nil, err
	}
	s.cache.setPrompts(list)
	return list, nil
}

func (s *PromptStore) storePrompts(ctx context.Context, list []prompts.Prompt) error {
	err := s.storeJSON(ctx, s.local, KeyPrompts, list)
	s.cache.invalidate()
	return err
}

func (s *PromptStore) loadFavorites(ctx context.Context) ([]prompts.Favorite, error) {
	if cached, hit := s.cache.getFavorites(); hit {
		return cached, nil
	}
	var list []prompts.Favorite
	if err := s.loadJSON(ctx, s.synced, KeyFavorites, &list); err != nil {
		return nil, err
	}
	s.cache.setFavorites(list)
	return list, nil
}

func (s *PromptStore) storeFavorites(ctx context.Context, list []prompts.Favorite) error {
	err := s.storeJSON(ctx, s.synced, KeyFavorites, list)
	s.cache.invalidate()
	return err
}

func (s *PromptStore) loadHistory(ctx context.Context) ([]prompts.HistoryEntry, error) {
	var list []prompts.HistoryEntry
	if err := s.loadJSON(ctx, s.local, KeyHistory, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *PromptStore) storeHistory(ctx context.Context, list []prompts.HistoryEntry) error {
	return s.storeJSON(ctx, s.local, KeyHistory, list)
}

// loadJSON decodes the whole-value blob at key into out; an absent key
// leaves out at its zero value.
func (s *PromptStore) loadJSON(ctx context.Context, part *kv.Store, key string, out any) error {
	raw, found, err := part.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (s *PromptStore) storeJSON(ctx context.Context, part *kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return part.Set(ctx, key, raw)
}

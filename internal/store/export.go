package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ajramos/promptvault/internal/prompts"
)

// ExportVersion is the version stamp written into export payloads.
const ExportVersion = "1.0.0"

// Export is the portable snapshot of all four collections. Settings are
// carried as raw JSON; the store never interprets them.
type Export struct {
	Version    string                 `json:"version"`
	ExportDate string                 `json:"exportDate"`
	Prompts    []prompts.Prompt       `json:"prompts"`
	Favorites  []prompts.Favorite     `json:"favorites"`
	History    []prompts.HistoryEntry `json:"history"`
	Settings   json.RawMessage        `json:"settings,omitempty"`
}

// ImportOptions selects between merging into and replacing the current
// collections.
type ImportOptions struct {
	// Merge keeps existing custom prompts and adds only imported prompts
	// whose id is not already present. When false the custom prompts are
	// replaced outright. Favorites and history are always replaced when
	// present in the payload.
	Merge bool
}

// ExportAll snapshots custom prompts (defaults are never exported),
// favorites, history and the raw settings blob. Unlike the other read
// paths it reports storage errors, since a partial export is worse than
// none.
func (s *PromptStore) ExportAll(ctx context.Context) (*Export, error) {
	custom, err := s.loadPrompts(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := s.loadFavorites(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}
	settings, _, err := s.synced.Get(ctx, KeySettings)
	if err != nil {
		return nil, err
	}

	if custom == nil {
		custom = []prompts.Prompt{}
	}
	if favorites == nil {
		favorites = []prompts.Favorite{}
	}
	if history == nil {
		history = []prompts.HistoryEntry{}
	}

	return &Export{
		Version:    ExportVersion,
		ExportDate: s.now().UTC().Format(time.RFC3339),
		Prompts:    custom,
		Favorites:  favorites,
		History:    history,
		Settings:   settings,
	}, nil
}

// ImportData restores an export payload. A payload without a prompts
// collection is rejected before anything is written, so a malformed file
// can never wipe the stored prompts. In merge mode prompts already
// present (by id) are kept as-is and not counted as imported; new
// prompts land ahead of the existing ones. Default prompts sneaking
// into a payload are dropped: the built-in set is not storage data.
// The settings blob is left alone here; applying it is the settings
// manager's job.
func (s *PromptStore) ImportData(ctx context.Context, data *Export, opts ImportOptions) ImportResult {
	if data == nil || data.Prompts == nil {
		return ImportResult{Error: "import payload has no prompts"}
	}

	imported, err := s.importPrompts(ctx, data.Prompts, opts.Merge)
	if err != nil {
		return ImportResult{Error: err.Error()}
	}

	if data.Favorites != nil {
		s.synced.Lock()
		err = s.storeFavorites(ctx, data.Favorites)
		s.synced.Unlock()
		if err != nil {
			return ImportResult{Error: err.Error()}
		}
	}

	if data.History != nil {
		history := data.History
		if len(history) > MaxHistory {
			history = history[:MaxHistory]
		}
		s.local.Lock()
		err = s.storeHistory(ctx, history)
		s.local.Unlock()
		if err != nil {
			return ImportResult{Error: err.Error()}
		}
	}

	return ImportResult{Success: true, Imported: imported}
}

func (s *PromptStore) importPrompts(ctx context.Context, incoming []prompts.Prompt, merge bool) (int, error) {
	s.local.Lock()
	defer s.local.Unlock()

	var current []prompts.Prompt
	if merge {
		var err error
		current, err = s.loadPrompts(ctx)
		if err != nil {
			return 0, err
		}
	}

	existing := make(map[string]bool, len(current))
	for _, p := range current {
		existing[p.ID] = true
	}

	added := make([]prompts.Prompt, 0, len(incoming))
	for _, p := range incoming {
		if prompts.IsDefaultID(p.ID) || p.IsDefault {
			continue
		}
		if p.ID == "" {
			p.ID = s.newID()
		}
		if existing[p.ID] {
			continue
		}
		existing[p.ID] = true
		added = append(added, p)
	}

	// Imported prompts go in front; the existing collection keeps its
	// order behind them.
	if err := s.storePrompts(ctx, append(added, current...)); err != nil {
		return 0, err
	}
	return len(added), nil
}

// Package bridge is the message boundary of the application: every
// operation a surface (CLI, future RPC) can ask for is one request
// variant, and Dispatch is the single switch that routes them. The
// request set is closed: variants implement an unexported marker, so a
// new operation means a new type here and a new dispatch arm.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ajramos/promptvault/internal/config"
	"github.com/ajramos/promptvault/internal/prompts"
	"github.com/ajramos/promptvault/internal/services"
	"github.com/ajramos/promptvault/internal/store"
)

// Request is the closed set of operations. Only types in this package
// satisfy it.
type Request interface {
	isRequest()
}

// GetPrompts lists the merged prompt set.
type GetPrompts struct {
	Category string
	Options  store.ListOptions
}

// GetPrompt fetches a single prompt by id.
type GetPrompt struct {
	ID string
}

// SavePrompt creates a custom prompt.
type SavePrompt struct {
	Prompt prompts.Prompt
}

// UpdatePrompt partially updates a custom prompt.
type UpdatePrompt struct {
	ID     string
	Update store.PromptUpdate
}

// DeletePrompt removes a custom prompt and its favorites entry.
type DeletePrompt struct {
	ID string
}

// GetFavorites lists the favorites collection.
type GetFavorites struct{}

// AddToFavorites pins a prompt.
type AddToFavorites struct {
	ID string
}

// RemoveFromFavorites unpins a prompt.
type RemoveFromFavorites struct {
	ID string
}

// GetHistory lists recent history; Limit 0 means all.
type GetHistory struct {
	Limit int
}

// AddToHistory records a prompt use.
type AddToHistory struct {
	Entry prompts.HistoryEntry
}

// ClearHistory wipes the history collection.
type ClearHistory struct{}

// IncrementUsage bumps a prompt's usage counter.
type IncrementUsage struct {
	ID string
}

// GetCategories aggregates the merged set per category.
type GetCategories struct {
	Language string
}

// ImprovePrompt rewrites a prompt via AI or templates.
type ImprovePrompt struct {
	Text    string
	Options services.ImproveOptions
}

// AnalyzePrompt scores a prompt's structure.
type AnalyzePrompt struct {
	Text string
}

// FormatPrompt normalizes captured text, optionally stripping HTML.
type FormatPrompt struct {
	Text string
	HTML bool
}

// ExportData snapshots all collections.
type ExportData struct{}

// ImportData restores an export payload. The settings blob, when
// requested, is applied through the settings manager rather than by the
// store.
type ImportData struct {
	Data          *store.Export
	Options       store.ImportOptions
	ApplySettings bool
}

// GetSettings returns the merged preferences.
type GetSettings struct{}

// SaveSettings applies a partial settings update.
type SaveSettings struct {
	Patch config.SettingsPatch
}

func (GetPrompts) isRequest()          {}
func (GetPrompt) isRequest()           {}
func (SavePrompt) isRequest()          {}
func (UpdatePrompt) isRequest()        {}
func (DeletePrompt) isRequest()        {}
func (GetFavorites) isRequest()        {}
func (AddToFavorites) isRequest()      {}
func (RemoveFromFavorites) isRequest() {}
func (GetHistory) isRequest()          {}
func (AddToHistory) isRequest()        {}
func (ClearHistory) isRequest()        {}
func (IncrementUsage) isRequest()      {}
func (GetCategories) isRequest()       {}
func (ImprovePrompt) isRequest()       {}
func (AnalyzePrompt) isRequest()       {}
func (FormatPrompt) isRequest()        {}
func (ExportData) isRequest()          {}
func (ImportData) isRequest()          {}
func (GetSettings) isRequest()         {}
func (SaveSettings) isRequest()        {}

// Handler owns the services a request may touch.
type Handler struct {
	Store    *store.PromptStore
	AI       *services.AIServiceImpl
	Settings *config.Manager
}

// Dispatch routes a request to its operation. The error return covers
// plumbing failures (unknown variant, unavailable service); domain
// failures travel inside the result values, which never panic or throw.
func (h *Handler) Dispatch(ctx context.Context, req Request) (any, error) {
	switch r := req.(type) {
	case GetPrompts:
		return h.Store.ListPrompts(ctx, r.Category, r.Options), nil
	case GetPrompt:
		p := h.Store.GetPromptByID(ctx, r.ID)
		if p == nil {
			return nil, fmt.Errorf("prompt %q: %w", r.ID, services.ErrNotFound)
		}
		return p, nil
	case SavePrompt:
		return h.Store.SavePrompt(ctx, r.Prompt), nil
	case UpdatePrompt:
		return h.Store.UpdatePrompt(ctx, r.ID, r.Update), nil
	case DeletePrompt:
		return h.Store.DeletePrompt(ctx, r.ID), nil
	case GetFavorites:
		return h.Store.ListFavorites(ctx), nil
	case AddToFavorites:
		return h.Store.AddToFavorites(ctx, r.ID), nil
	case RemoveFromFavorites:
		return h.Store.RemoveFromFavorites(ctx, r.ID), nil
	case GetHistory:
		return h.Store.ListHistory(ctx, r.Limit), nil
	case AddToHistory:
		return h.Store.AddToHistory(ctx, r.Entry), nil
	case ClearHistory:
		return h.Store.ClearHistory(ctx), nil
	case IncrementUsage:
		h.Store.IncrementUsage(ctx, r.ID)
		return store.OpResult{Success: true, ID: r.ID}, nil
	case GetCategories:
		return h.Store.ListCategories(ctx, r.Language), nil
	case ImprovePrompt:
		if h.AI == nil {
			return nil, fmt.Errorf("AI service not available: %w", services.ErrServiceUnavailable)
		}
		return h.AI.ImprovePrompt(ctx, r.Text, r.Options), nil
	case AnalyzePrompt:
		return services.AnalyzePrompt(r.Text), nil
	case FormatPrompt:
		if r.HTML {
			return services.StripHTML(r.Text), nil
		}
		return services.FormatPrompt(r.Text), nil
	case ExportData:
		return h.Store.ExportAll(ctx)
	case ImportData:
		res := h.Store.ImportData(ctx, r.Data, r.Options)
		if res.Success && r.ApplySettings && r.Data != nil && len(r.Data.Settings) > 0 {
			if err := h.Settings.Import(ctx, r.Data.Settings); err != nil {
				res.Success = false
				res.Error = err.Error()
			}
		}
		return res, nil
	case GetSettings:
		return h.Settings.Load(ctx), nil
	case SaveSettings:
		if err := h.Settings.Save(ctx, r.Patch); err != nil {
			return nil, err
		}
		return h.Settings.Load(ctx), nil
	default:
		return nil, fmt.Errorf("unknown request type %T", req)
	}
}

// DispatchJSON dispatches and encodes the result, for surfaces that speak
// JSON end to end.
func (h *Handler) DispatchJSON(ctx context.Context, req Request) ([]byte, error) {
	out, err := h.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(out, "", "  ")
}

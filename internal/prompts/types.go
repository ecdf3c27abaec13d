package prompts

// Prompt is a reusable instruction template for a generative text model.
// Custom prompts are persisted in the local partition; default prompts are
// compiled in and never written to storage.
type Prompt struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Text        string   `json:"text"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	CreatedAt   int64    `json:"createdAt,omitempty"`
	UpdatedAt   int64    `json:"updatedAt,omitempty"`
	UsageCount  int      `json:"usageCount,omitempty"`
	IsFavorite  bool     `json:"isFavorite,omitempty"`
	IsDefault   bool     `json:"isDefault,omitempty"`
}

// Favorite is a user-pinned shallow copy of a prompt. Membership is keyed
// by ID only; a favorite may outlive the prompt it was copied from.
type Favorite struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
	AddedAt  int64  `json:"addedAt"`
}

// NewFavorite builds the shallow projection stored in the favorites
// collection.
func NewFavorite(p Prompt, addedAt int64) Favorite {
	return Favorite{
		ID:       p.ID,
		Title:    p.Title,
		Text:     p.Text,
		Category: p.Category,
		AddedAt:  addedAt,
	}
}

// HistoryEntry is a log record of a prompt text used in some interaction.
// The history collection is newest-first and bounded.
type HistoryEntry struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Type      string            `json:"type,omitempty"`
	Timestamp int64             `json:"timestamp"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// CategoryInfo is a derived (never stored) per-category aggregate.
type CategoryInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

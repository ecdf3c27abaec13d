package config

// Settings are the user preferences persisted in the synced partition
// under the "settings" key. JSON field names match the stored blob.
type Settings struct {
	Language      string    `json:"language"`
	Theme         string    `json:"theme"`
	AutoSave      bool      `json:"autoSave"`
	Notifications bool      `json:"notifications"`
	UseAI         bool      `json:"useAI"`
	APIKey        string    `json:"apiKey"`
	Shortcuts     Shortcuts `json:"shortcuts"`
	Categories    []string  `json:"categories"`
}

// Shortcuts are the keyboard bindings exposed to the user.
type Shortcuts struct {
	OpenPopup   string `json:"openPopup"`
	QuickInsert string `json:"quickInsert"`
}

// DefaultSettings returns the full default preference set. Reads merge
// stored settings over this, so a partial or malformed blob still yields
// a complete Settings value.
func DefaultSettings() Settings {
	return Settings{
		Language:      "ar",
		Theme:         "dark",
		AutoSave:      true,
		Notifications: true,
		UseAI:         true,
		APIKey:        "",
		Shortcuts: Shortcuts{
			OpenPopup:   "Ctrl+Shift+P",
			QuickInsert: "Ctrl+Shift+I",
		},
		Categories: []string{
			"general", "coding", "writing", "analysis",
			"creative", "translation", "education", "business",
		},
	}
}

// SettingsPatch is a partial settings update: only non-nil fields are
// applied. Saving goes through a patch so an update never clobbers
// preferences it does not mention.
type SettingsPatch struct {
	Language      *string    `json:"language,omitempty"`
	Theme         *string    `json:"theme,omitempty"`
	AutoSave      *bool      `json:"autoSave,omitempty"`
	Notifications *bool      `json:"notifications,omitempty"`
	UseAI         *bool      `json:"useAI,omitempty"`
	APIKey        *string    `json:"apiKey,omitempty"`
	Shortcuts     *Shortcuts `json:"shortcuts,omitempty"`
	Categories    *[]string  `json:"categories,omitempty"`
}

// Apply overlays the patch on top of s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.AutoSave != nil {
		s.AutoSave = *p.AutoSave
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.UseAI != nil {
		s.UseAI = *p.UseAI
	}
	if p.APIKey != nil {
		s.APIKey = *p.APIKey
	}
	if p.Shortcuts != nil {
		s.Shortcuts = *p.Shortcuts
	}
	if p.Categories != nil {
		s.Categories = append([]string(nil), (*p.Categories)...)
	}
	return s
}

package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajramos/promptvault/internal/prompts"
	"github.com/ajramos/promptvault/internal/store"
)

// PromptFrontMatter is the YAML header of a prompt file. The body below
// the closing delimiter is the prompt text.
type PromptFrontMatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// PromptServiceImpl moves prompts between the store and Markdown files
// with YAML front matter.
type PromptServiceImpl struct {
	store *store.PromptStore
}

// NewPromptService creates a new prompt file service
func NewPromptService(st *store.PromptStore) *PromptServiceImpl {
	return &PromptServiceImpl{store: st}
}

// CreateFromFile reads a prompt file and saves it as a custom prompt. The
// file name (minus extension) names the prompt when the front matter does
// not.
func (s *PromptServiceImpl) CreateFromFile(ctx context.Context, path string) store.OpResult {
	if s.store == nil {
		return store.OpResult{Error: "prompt store not available"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return store.OpResult{Error: fmt.Sprintf("failed to read prompt file: %v", err)}
	}

	fm, body, err := splitFrontMatter(string(data))
	if err != nil {
		return store.OpResult{Error: fmt.Sprintf("invalid front matter: %v", err)}
	}

	title := fm.Name
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s.store.SavePrompt(ctx, prompts.Prompt{
		Title:       title,
		Text:        strings.TrimSpace(body),
		Category:    fm.Category,
		Tags:        fm.Tags,
		Description: fm.Description,
	})
}

// ExportToFile writes a prompt as a Markdown file with front matter.
func (s *PromptServiceImpl) ExportToFile(ctx context.Context, id, path string) error {
	if s.store == nil {
		return fmt.Errorf("prompt store not available")
	}

	p := s.store.GetPromptByID(ctx, id)
	if p == nil {
		return fmt.Errorf("prompt %q: %w", id, ErrNotFound)
	}

	header, err := yaml.Marshal(PromptFrontMatter{
		Name:        p.Title,
		Description: p.Description,
		Category:    p.Category,
		Tags:        p.Tags,
	})
	if err != nil {
		return fmt.Errorf("failed to encode front matter: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(p.Text)
	b.WriteString("\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// splitFrontMatter separates an optional leading YAML block from the
// body. A file with no front matter is all body.
func splitFrontMatter(content string) (PromptFrontMatter, string, error) {
	var fm PromptFrontMatter

	trimmed := strings.TrimLeft(content, "\uFEFF\n\r")
	if !strings.HasPrefix(trimmed, "---") {
		return fm, content, nil
	}

	rest := trimmed[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return fm, content, nil
	}

	block := rest[:idx]
	body := rest[idx+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return PromptFrontMatter{}, "", err
	}
	return fm, body, nil
}

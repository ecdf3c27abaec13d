package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajramos/promptvault/internal/kv"
	"github.com/ajramos/promptvault/internal/prompts"
	"github.com/ajramos/promptvault/internal/store"
)

func newTestPromptService(t *testing.T) (*PromptServiceImpl, *store.PromptStore) {
	t.Helper()
	parts, err := kv.OpenPartitions(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = parts.Close() })
	st := store.New(parts)
	return NewPromptService(st), st
}

func TestCreateFromFile_WithFrontMatter(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestPromptService(t)

	path := filepath.Join(t.TempDir(), "reviewer.md")
	require.NoError(t, os.WriteFile(path, []byte(`---
name: Code Reviewer
description: Reviews diffs
category: coding
tags: [review, quality]
---

Review the following code for bugs and style issues.
`), 0o644))

	res := svc.CreateFromFile(ctx, path)
	require.True(t, res.Success, res.Error)

	p := st.GetPromptByID(ctx, res.ID)
	require.NotNil(t, p)
	assert.Equal(t, "Code Reviewer", p.Title)
	assert.Equal(t, "Review the following code for bugs and style issues.", p.Text)
	assert.Equal(t, "coding", p.Category)
	assert.Equal(t, []string{"review", "quality"}, p.Tags)
	assert.Equal(t, "Reviews diffs", p.Description)
}

func TestCreateFromFile_NoFrontMatterUsesFileName(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestPromptService(t)

	path := filepath.Join(t.TempDir(), "quick-summary.md")
	require.NoError(t, os.WriteFile(path, []byte("Summarize the text below.\n"), 0o644))

	res := svc.CreateFromFile(ctx, path)
	require.True(t, res.Success, res.Error)

	p := st.GetPromptByID(ctx, res.ID)
	require.NotNil(t, p)
	assert.Equal(t, "quick-summary", p.Title)
	assert.Equal(t, "general", p.Category)
}

func TestCreateFromFile_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestPromptService(t)

	res := svc.CreateFromFile(ctx, filepath.Join(t.TempDir(), "missing.md"))
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "failed to read")

	bad := filepath.Join(t.TempDir(), "bad.md")
	require.NoError(t, os.WriteFile(bad, []byte("---\nname: [broken\n---\nbody"), 0o644))
	res = svc.CreateFromFile(ctx, bad)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "front matter")
}

func TestExportToFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestPromptService(t)

	saved := st.SavePrompt(ctx, promptFixture())
	require.True(t, saved.Success)

	out := filepath.Join(t.TempDir(), "out", "exported.md")
	require.NoError(t, svc.ExportToFile(ctx, saved.ID, out))

	res := svc.CreateFromFile(ctx, out)
	require.True(t, res.Success, res.Error)

	p := st.GetPromptByID(ctx, res.ID)
	require.NotNil(t, p)
	assert.Equal(t, "Essay Helper", p.Title)
	assert.Equal(t, "Write an essay outline.", p.Text)
	assert.Equal(t, "writing", p.Category)
	assert.Equal(t, []string{"essay"}, p.Tags)
}

func TestExportToFile_UnknownID(t *testing.T) {
	svc, _ := newTestPromptService(t)
	err := svc.ExportToFile(context.Background(), "missing", filepath.Join(t.TempDir(), "x.md"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func promptFixture() prompts.Prompt {
	return prompts.Prompt{
		Title:    "Essay Helper",
		Text:     "Write an essay outline.",
		Category: "writing",
		Tags:     []string{"essay"},
	}
}

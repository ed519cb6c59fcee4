package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierink/ouvroir/ai"
)

func testProject() *ProjectData {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &ProjectData{
		ID:          "proj-1",
		Name:        "A Void Homage",
		Description: "A novel without the letter e",
		Documents: []Document{
			{
				ID:      "doc-1",
				Title:   "Chapter One",
				Content: "It was a dark night.\n\nNothing stirred.",
				Status:  StatusDraft,
			},
		},
		Characters: []ai.Character{
			{ID: "char-1", Name: "Anton", Description: "A missing man", Want: "To be found", Need: "To let go"},
		},
		PlotStructure: &PlotStructure{
			ID:              "plot-1",
			TargetWordCount: 80000,
			Beats: []ai.Beat{
				{ID: "beat-1", Name: "Opening Image", Percentage: 1, Description: "Sets the tone", Content: "A quiet street."},
				{ID: "beat-2", Name: "Catalyst", Percentage: 10, Description: "The disappearance"},
			},
		},
		Notes: []Note{
			{ID: "note-1", Title: "Research", Content: "Perec published in 1969.", Tags: []string{"oulipo", "history"}},
		},
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

func allSections(format Format) Options {
	return Options{
		Format:               format,
		IncludeMetadata:      true,
		IncludePlotStructure: true,
		IncludeCharacters:    true,
		IncludeNotes:         true,
	}
}

func TestRenderMarkdown(t *testing.T) {
	svc := NewService()
	content, err := svc.Render(testProject(), allSections(FormatMarkdown))
	require.NoError(t, err)

	assert.Contains(t, content, "# A Void Homage")
	assert.Contains(t, content, "**Description:** A novel without the letter e")
	assert.Contains(t, content, "**Created:** 2026-03-01")
	assert.Contains(t, content, "## Plot Structure")
	assert.Contains(t, content, "### Opening Image (1%)")
	assert.Contains(t, content, "**Content:**\nA quiet street.")
	assert.Contains(t, content, "## Characters")
	assert.Contains(t, content, "**Want:** To be found")
	assert.Contains(t, content, "## Documents")
	assert.Contains(t, content, "### Chapter One")
	assert.Contains(t, content, "## Notes")
	assert.Contains(t, content, "**Tags:** oulipo, history")
}

func TestRenderMarkdownSectionsExcluded(t *testing.T) {
	svc := NewService()
	content, err := svc.Render(testProject(), Options{Format: FormatMarkdown})
	require.NoError(t, err)

	// Documents are always part of the export.
	assert.Contains(t, content, "### Chapter One")
	assert.NotContains(t, content, "# A Void Homage")
	assert.NotContains(t, content, "## Plot Structure")
	assert.NotContains(t, content, "## Characters")
	assert.NotContains(t, content, "## Notes")
}

func TestRenderHTML(t *testing.T) {
	svc := NewService()
	project := testProject()
	project.Documents[0].Content = "Tom & Jerry.\n\nA <quiet> street."

	content, err := svc.Render(project, allSections(FormatHTML))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "<title>A Void Homage</title>")
	assert.Contains(t, content, "<h1>A Void Homage</h1>")
	assert.Contains(t, content, "<h3>Anton</h3>")
	// Document text must be escaped.
	assert.Contains(t, content, "Tom &amp; Jerry.")
	assert.Contains(t, content, "A &lt;quiet&gt; street.")
	assert.NotContains(t, content, "<quiet>")
}

func TestRenderJSON(t *testing.T) {
	svc := NewService()
	content, err := svc.Render(testProject(), Options{Format: FormatJSON})
	require.NoError(t, err)

	var roundtrip ProjectData
	require.NoError(t, json.Unmarshal([]byte(content), &roundtrip))
	assert.Equal(t, "A Void Homage", roundtrip.Name)
	require.NotNil(t, roundtrip.PlotStructure)
	assert.Len(t, roundtrip.PlotStructure.Beats, 2)
}

func TestRenderPlainText(t *testing.T) {
	svc := NewService()
	content, err := svc.Render(testProject(), allSections(FormatPlainText))
	require.NoError(t, err)

	assert.Contains(t, content, "A Void Homage\n")
	assert.Contains(t, content, strings.Repeat("=", 50))
	assert.Contains(t, content, "Chapter One\n"+strings.Repeat("-", len("Chapter One")))
	assert.NotContains(t, content, "**")
	assert.NotContains(t, content, "##")
}

func TestRenderUnknownFormat(t *testing.T) {
	svc := NewService()
	_, err := svc.Render(testProject(), Options{Format: Format("docx")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestExportProjectWritesFile(t *testing.T) {
	svc := NewService()
	dir := t.TempDir()
	opts := allSections(FormatMarkdown)
	opts.OutputPath = filepath.Join(dir, "out.md")

	result := svc.ExportProject(testProject(), opts)
	require.True(t, result.Success, "export failed: %s", result.Error)
	assert.Equal(t, opts.OutputPath, result.OutputPath)
	assert.Greater(t, result.FileSize, int64(0))
	assert.Equal(t, FormatMarkdown, result.Format)
}

func TestExportProjectUnknownFormat(t *testing.T) {
	svc := NewService()
	result := svc.ExportProject(testProject(), Options{Format: Format("docx")})
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unsupported export format")
	assert.Empty(t, result.OutputPath)
}

func TestExportBeatSheet(t *testing.T) {
	svc := NewService()
	dir := t.TempDir()
	opts := Options{Format: FormatMarkdown, OutputPath: filepath.Join(dir, "beats.md")}

	result := svc.ExportBeatSheet(testProject().PlotStructure, opts)
	require.True(t, result.Success, "export failed: %s", result.Error)

	content := svc.renderBeatSheet(testProject().PlotStructure, FormatMarkdown)
	assert.Contains(t, content, "# Beat Sheet")
	assert.Contains(t, content, "## Opening Image (1%)")
	assert.Contains(t, content, "## Catalyst (10%)")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces and punctuation", "My Novel: Draft!", "My_Novel__Draft_"},
		{"already clean", "beat-sheet_v2", "beat-sheet_v2"},
		{"unicode letters kept", "Césure", "Césure"},
		{"slashes replaced", "a/b\\c", "a_b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFilename(tt.input))
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	svc := NewService()
	assert.Equal(t, "A_Void_Homage.md", svc.outputPath("", "A Void Homage", FormatMarkdown))
	assert.Equal(t, "beat-sheet.json", svc.outputPath("", "beat-sheet", FormatJSON))
	assert.Equal(t, "custom.txt", svc.outputPath("custom.txt", "ignored", FormatPlainText))
}

func TestListFormatsSorted(t *testing.T) {
	formats := ListFormats()
	require.Len(t, formats, 4)
	assert.Equal(t, FormatHTML, formats[0].Name)
	assert.Equal(t, FormatJSON, formats[1].Name)
	assert.Equal(t, FormatMarkdown, formats[2].Name)
	assert.Equal(t, FormatPlainText, formats[3].Name)
}

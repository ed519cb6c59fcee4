// Package export renders writing projects into portable document formats.
package export

import (
	"sort"
	"time"

	"github.com/atelierink/ouvroir/ai"
)

// Format identifies an export output format.
type Format string

// Supported export formats.
const (
	FormatMarkdown  Format = "markdown"
	FormatHTML      Format = "html"
	FormatJSON      Format = "json"
	FormatPlainText Format = "plaintext"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatMarkdown: {
		Name:        FormatMarkdown,
		MIMEType:    "text/markdown",
		Extension:   ".md",
		Description: "Markdown - portable plain-text markup",
	},
	FormatHTML: {
		Name:        FormatHTML,
		MIMEType:    "text/html",
		Extension:   ".html",
		Description: "HTML - standalone web page",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON - full structured project data",
	},
	FormatPlainText: {
		Name:        FormatPlainText,
		MIMEType:    "text/plain",
		Extension:   ".txt",
		Description: "Plain text - manuscript only, no markup",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ListFormats returns all supported formats, sorted by name.
func ListFormats() []FormatInfo {
	infos := make([]FormatInfo, 0, len(FormatRegistry))
	for _, info := range FormatRegistry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// DocumentStatus tracks a document through the drafting lifecycle.
type DocumentStatus string

const (
	StatusDraft      DocumentStatus = "draft"
	StatusInProgress DocumentStatus = "in_progress"
	StatusComplete   DocumentStatus = "complete"
	StatusPublished  DocumentStatus = "published"
)

// Document is one manuscript document within a project.
type Document struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	WordCount int               `json:"word_count"`
	Status    DocumentStatus    `json:"status"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// PlotStructure holds the story beats, themes, and conflicts of a project.
type PlotStructure struct {
	ID              string        `json:"id"`
	TargetWordCount int           `json:"target_word_count"`
	Beats           []ai.Beat     `json:"beats"`
	Themes          []ai.Theme    `json:"themes"`
	Conflicts       []ai.Conflict `json:"conflicts"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Note is a free-form project note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectData is the complete exportable state of a writing project.
type ProjectData struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Documents     []Document     `json:"documents"`
	Characters    []ai.Character `json:"characters,omitempty"`
	PlotStructure *PlotStructure `json:"plot_structure,omitempty"`
	Notes         []Note         `json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Options selects the output format and the project sections to include.
type Options struct {
	Format               Format `json:"format"`
	IncludeMetadata      bool   `json:"include_metadata"`
	IncludePlotStructure bool   `json:"include_plot_structure"`
	IncludeCharacters    bool   `json:"include_characters"`
	IncludeNotes         bool   `json:"include_notes"`
	OutputPath           string `json:"output_path,omitempty"`
}

// Result reports the outcome of an export operation.
type Result struct {
	Success          bool   `json:"success"`
	OutputPath       string `json:"output_path,omitempty"`
	FileSize         int64  `json:"file_size,omitempty"`
	Format           Format `json:"format"`
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	Error            string `json:"error,omitempty"`
}

package commands

import (
	"fmt"
	"time"

	"github.com/atelierink/ouvroir/ai"
	"github.com/atelierink/ouvroir/export"
)

// ExportProject renders a project to the requested format and writes the
// output file.
func (s *AppState) ExportProject(project *export.ProjectData, opts export.Options) *Response {
	result := s.Export.ExportProject(project, opts)
	if !result.Success {
		return errorResponse("Export failed: %s", result.Error)
	}
	return resultResponse(fmt.Sprintf("Exported to %s (%d bytes)", result.OutputPath, result.FileSize), result)
}

// ExportBeatSheet writes the beat sheet of a plot structure.
func (s *AppState) ExportBeatSheet(plot *export.PlotStructure, opts export.Options) *Response {
	result := s.Export.ExportBeatSheet(plot, opts)
	if !result.Success {
		return errorResponse("Beat sheet export failed: %s", result.Error)
	}
	return resultResponse(fmt.Sprintf("Exported to %s", result.OutputPath), result)
}

// ExportCharacters writes just the character profiles, wrapped in a
// single-purpose project so the regular project pipeline renders them.
func (s *AppState) ExportCharacters(characters []ai.Character, opts export.Options) *Response {
	now := time.Now()
	project := &export.ProjectData{
		ID:          "characters-export",
		Name:        "Character Profiles",
		Description: "Exported character profiles",
		Characters:  characters,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	opts.IncludeCharacters = true
	opts.IncludeMetadata = false
	opts.IncludePlotStructure = false
	opts.IncludeNotes = false

	result := s.Export.ExportProject(project, opts)
	if !result.Success {
		return errorResponse("Character export failed: %s", result.Error)
	}
	return resultResponse(fmt.Sprintf("Exported %d characters to %s", len(characters), result.OutputPath), result)
}

// ExportResearchNotes writes just the research notes through the project
// pipeline.
func (s *AppState) ExportResearchNotes(notes []export.Note, opts export.Options) *Response {
	now := time.Now()
	project := &export.ProjectData{
		ID:          "research-export",
		Name:        "Research Notes",
		Description: "Exported research notes",
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	opts.IncludeNotes = true
	opts.IncludeMetadata = false
	opts.IncludePlotStructure = false
	opts.IncludeCharacters = false

	result := s.Export.ExportProject(project, opts)
	if !result.Success {
		return errorResponse("Research export failed: %s", result.Error)
	}
	return resultResponse(fmt.Sprintf("Exported %d notes to %s", len(notes), result.OutputPath), result)
}

// ListExportFormats returns metadata for every supported export format.
func (s *AppState) ListExportFormats() *Response {
	formats := export.ListFormats()
	return resultResponse(fmt.Sprintf("%d formats available", len(formats)), formats)
}

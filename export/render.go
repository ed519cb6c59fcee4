package export

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode"
)

const dateLayout = "2006-01-02"

// Service renders and writes project exports. It is stateless and safe for
// concurrent use.
type Service struct{}

// NewService creates an export service.
func NewService() *Service {
	return &Service{}
}

// Render produces the export content for a project without touching the
// filesystem.
func (s *Service) Render(project *ProjectData, opts Options) (string, error) {
	switch opts.Format {
	case FormatMarkdown:
		return s.renderMarkdown(project, opts), nil
	case FormatHTML:
		return s.renderHTML(project, opts), nil
	case FormatJSON:
		return s.renderJSON(project)
	case FormatPlainText:
		return s.renderPlainText(project, opts), nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", opts.Format)
	}
}

// ExportProject renders the project and writes it to the output path. Render
// or write failures are reported in the Result, not as an error.
func (s *Service) ExportProject(project *ProjectData, opts Options) *Result {
	start := time.Now()

	content, err := s.Render(project, opts)
	if err != nil {
		return &Result{
			Success:          false,
			Format:           opts.Format,
			ProcessingTimeMS: time.Since(start).Milliseconds(),
			Error:            err.Error(),
		}
	}

	outputPath := s.outputPath(opts.OutputPath, project.Name, opts.Format)
	size, err := writeFile(outputPath, content)
	if err != nil {
		return &Result{
			Success:          false,
			Format:           opts.Format,
			ProcessingTimeMS: time.Since(start).Milliseconds(),
			Error:            err.Error(),
		}
	}

	slog.Debug("Project exported",
		"project", project.Name,
		"format", opts.Format,
		"path", outputPath,
		"bytes", size)

	return &Result{
		Success:          true,
		OutputPath:       outputPath,
		FileSize:         size,
		Format:           opts.Format,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}
}

// ExportBeatSheet renders just the beat sheet of a plot structure.
func (s *Service) ExportBeatSheet(plot *PlotStructure, opts Options) *Result {
	start := time.Now()

	content := s.renderBeatSheet(plot, opts.Format)
	outputPath := s.outputPath(opts.OutputPath, "beat-sheet", opts.Format)
	size, err := writeFile(outputPath, content)
	if err != nil {
		return &Result{
			Success:          false,
			Format:           opts.Format,
			ProcessingTimeMS: time.Since(start).Milliseconds(),
			Error:            err.Error(),
		}
	}

	return &Result{
		Success:          true,
		OutputPath:       outputPath,
		FileSize:         size,
		Format:           opts.Format,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
	}
}

func (s *Service) renderMarkdown(project *ProjectData, opts Options) string {
	var sb strings.Builder

	if opts.IncludeMetadata {
		fmt.Fprintf(&sb, "# %s\n\n", project.Name)
		fmt.Fprintf(&sb, "**Description:** %s\n\n", project.Description)
		fmt.Fprintf(&sb, "**Created:** %s\n", project.CreatedAt.Format(dateLayout))
		fmt.Fprintf(&sb, "**Last Updated:** %s\n\n", project.UpdatedAt.Format(dateLayout))
		sb.WriteString("---\n\n")
	}

	if opts.IncludePlotStructure && project.PlotStructure != nil {
		plot := project.PlotStructure
		sb.WriteString("## Plot Structure\n\n")
		fmt.Fprintf(&sb, "**Target Word Count:** %d\n\n", plot.TargetWordCount)
		for _, beat := range plot.Beats {
			fmt.Fprintf(&sb, "### %s (%d%%)\n\n", beat.Name, beat.Percentage)
			fmt.Fprintf(&sb, "**Description:** %s\n\n", beat.Description)
			if beat.Content != "" {
				fmt.Fprintf(&sb, "**Content:**\n%s\n\n", beat.Content)
			}
			if beat.WordCount > 0 {
				fmt.Fprintf(&sb, "**Target Words:** %d\n\n", beat.WordCount)
			}
		}
		sb.WriteString("---\n\n")
	}

	if opts.IncludeCharacters && len(project.Characters) > 0 {
		sb.WriteString("## Characters\n\n")
		for _, character := range project.Characters {
			fmt.Fprintf(&sb, "### %s\n\n", character.Name)
			if character.Description != "" {
				fmt.Fprintf(&sb, "**Description:** %s\n\n", character.Description)
			}
			if character.Want != "" {
				fmt.Fprintf(&sb, "**Want:** %s\n\n", character.Want)
			}
			if character.Need != "" {
				fmt.Fprintf(&sb, "**Need:** %s\n\n", character.Need)
			}
		}
		sb.WriteString("---\n\n")
	}

	sb.WriteString("## Documents\n\n")
	for _, document := range project.Documents {
		fmt.Fprintf(&sb, "### %s\n\n", document.Title)
		sb.WriteString(document.Content)
		sb.WriteString("\n\n---\n\n")
	}

	if opts.IncludeNotes && len(project.Notes) > 0 {
		sb.WriteString("## Notes\n\n")
		for _, note := range project.Notes {
			fmt.Fprintf(&sb, "### %s\n\n", note.Title)
			sb.WriteString(note.Content)
			if len(note.Tags) > 0 {
				fmt.Fprintf(&sb, "\n\n**Tags:** %s\n\n", strings.Join(note.Tags, ", "))
			}
			sb.WriteString("---\n\n")
		}
	}

	return sb.String()
}

func (s *Service) renderHTML(project *ProjectData, opts Options) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", html.EscapeString(project.Name))
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")

	if opts.IncludeMetadata {
		fmt.Fprintf(&sb, "    <h1>%s</h1>\n", html.EscapeString(project.Name))
		fmt.Fprintf(&sb, "    <p><strong>Description:</strong> %s</p>\n", html.EscapeString(project.Description))
		fmt.Fprintf(&sb, "    <p><strong>Created:</strong> %s</p>\n", project.CreatedAt.Format(dateLayout))
		fmt.Fprintf(&sb, "    <p><strong>Last Updated:</strong> %s</p>\n", project.UpdatedAt.Format(dateLayout))
		sb.WriteString("    <hr>\n")
	}

	if opts.IncludeCharacters && len(project.Characters) > 0 {
		sb.WriteString("    <h2>Characters</h2>\n")
		for _, character := range project.Characters {
			fmt.Fprintf(&sb, "    <h3>%s</h3>\n", html.EscapeString(character.Name))
			if character.Description != "" {
				fmt.Fprintf(&sb, "    <p>%s</p>\n", html.EscapeString(character.Description))
			}
		}
		sb.WriteString("    <hr>\n")
	}

	sb.WriteString("    <h2>Documents</h2>\n")
	for _, document := range project.Documents {
		fmt.Fprintf(&sb, "    <h3>%s</h3>\n", html.EscapeString(document.Title))
		for _, para := range strings.Split(document.Content, "\n\n") {
			if strings.TrimSpace(para) == "" {
				continue
			}
			fmt.Fprintf(&sb, "    <p>%s</p>\n", html.EscapeString(para))
		}
	}

	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")
	return sb.String()
}

func (s *Service) renderJSON(project *ProjectData) (string, error) {
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal project: %w", err)
	}
	return string(data), nil
}

func (s *Service) renderPlainText(project *ProjectData, opts Options) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 50)

	if opts.IncludeMetadata {
		fmt.Fprintf(&sb, "%s\n", project.Name)
		fmt.Fprintf(&sb, "Description: %s\n", project.Description)
		fmt.Fprintf(&sb, "Created: %s\n", project.CreatedAt.Format(dateLayout))
		fmt.Fprintf(&sb, "Last Updated: %s\n\n", project.UpdatedAt.Format(dateLayout))
		sb.WriteString(rule)
		sb.WriteString("\n\n")
	}

	for _, document := range project.Documents {
		fmt.Fprintf(&sb, "%s\n", document.Title)
		sb.WriteString(strings.Repeat("-", len(document.Title)))
		sb.WriteString("\n\n")
		sb.WriteString(document.Content)
		sb.WriteString("\n\n")
		sb.WriteString(rule)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func (s *Service) renderBeatSheet(plot *PlotStructure, format Format) string {
	switch format {
	case FormatMarkdown:
		var sb strings.Builder
		sb.WriteString("# Beat Sheet\n\n")
		fmt.Fprintf(&sb, "**Target Word Count:** %d\n\n", plot.TargetWordCount)
		for _, beat := range plot.Beats {
			fmt.Fprintf(&sb, "## %s (%d%%)\n\n", beat.Name, beat.Percentage)
			fmt.Fprintf(&sb, "**Description:** %s\n\n", beat.Description)
			if beat.Content != "" {
				fmt.Fprintf(&sb, "**Content:**\n%s\n\n", beat.Content)
			}
			sb.WriteString("---\n\n")
		}
		return sb.String()
	case FormatJSON:
		data, err := json.MarshalIndent(plot, "", "  ")
		if err != nil {
			return ""
		}
		return string(data)
	default:
		var sb strings.Builder
		sb.WriteString("BEAT SHEET\n")
		sb.WriteString(strings.Repeat("=", 50))
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "Target Word Count: %d\n\n", plot.TargetWordCount)
		for _, beat := range plot.Beats {
			fmt.Fprintf(&sb, "%s (%d%%)\n", beat.Name, beat.Percentage)
			sb.WriteString(strings.Repeat("-", len(beat.Name)))
			sb.WriteString("\n")
			fmt.Fprintf(&sb, "Description: %s\n\n", beat.Description)
		}
		return sb.String()
	}
}

func (s *Service) outputPath(requested, filename string, format Format) string {
	if requested != "" {
		return requested
	}
	extension := ".txt"
	if info, ok := GetFormatInfo(format); ok {
		extension = info.Extension
	}
	return sanitizeFilename(filename) + extension
}

// sanitizeFilename replaces any character outside [alphanumeric, -, _] with
// an underscore.
func sanitizeFilename(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

func writeFile(path, content string) (int64, error) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return 0, fmt.Errorf("write export file: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat export file: %w", err)
	}
	return info.Size(), nil
}

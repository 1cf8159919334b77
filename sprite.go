package sprite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// spriteHeader opens the root container. The display style keeps the
// sprite itself from rendering; consumers pull individual symbols out
// by fragment reference.
const spriteHeader = `<svg xmlns="http://www.w3.org/2000/svg" style="display: none;">`

// Generator packs a directory of SVG icon files into one sprite
// document.
type Generator struct {
	IconsDir string
	Output   string

	log zerolog.Logger
}

// NewGenerator returns a Generator writing the sprite for iconsDir to
// output.
func NewGenerator(iconsDir, output string, logger zerolog.Logger) *Generator {
	return &Generator{IconsDir: iconsDir, Output: output, log: logger}
}

// Stats summarizes one generator run.
type Stats struct {
	Files   int // SVG files discovered
	Packed  int // symbols written
	Skipped int // files with no retained elements
	Failed  int // files that could not be processed
	Bytes   int // size of the written sprite
}

// Run processes every *.svg file in the icons directory, in sorted
// file-name order, and writes the sprite document once at the end.
// Files that fail to parse or normalize are reported and skipped; the
// run only aborts on setup problems or a failed output write.
func (g *Generator) Run() (Stats, error) {
	var stats Stats

	entries, err := os.ReadDir(g.IconsDir)
	if err != nil {
		return stats, fmt.Errorf("icons directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".svg" {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("no SVG files found in %s", g.IconsDir)
	}
	sort.Strings(files)
	stats.Files = len(files)

	g.log.Info().Int("files", len(files)).Str("dir", g.IconsDir).Msg("processing SVG files")

	lines := []string{spriteHeader}
	for _, name := range files {
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		elements, err := g.packIcon(filepath.Join(g.IconsDir, name), stem)
		if err != nil {
			g.log.Error().Err(err).Str("icon", stem).Msg("skipping icon")
			stats.Failed++
			continue
		}
		if len(elements) == 0 {
			g.log.Warn().Str("icon", stem).Msg("no drawable elements, skipping icon")
			stats.Skipped++
			continue
		}

		lines = append(lines, `<symbol id="`+stem+`" viewBox="0 0 24 24">`)
		for _, el := range elements {
			lines = append(lines, el.Markup())
		}
		lines = append(lines, "</symbol>")
		stats.Packed++
		g.log.Info().Str("icon", stem).Int("elements", len(elements)).Msg("packed")
	}
	lines = append(lines, "</svg>")

	content := formatSprite(strings.Join(lines, "\n"))

	if dir := filepath.Dir(g.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return stats, fmt.Errorf("output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.Output, []byte(content), 0644); err != nil {
		return stats, fmt.Errorf("write sprite: %w", err)
	}
	stats.Bytes = len(content)

	return stats, nil
}

// packIcon parses one icon file and returns its retained, normalized
// elements. Path data that does not scan cleanly is reported but still
// emitted; the sprite reproduces source markup as-is.
func (g *Generator) packIcon(path, stem string) ([]*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, vb, err := ParseIcon(f)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	elements, err := CollectIconElements(root, vb)
	if err != nil {
		return nil, err
	}

	for _, el := range elements {
		if el.Tag != "path" {
			continue
		}
		if err := ScanPathData(stem, el.Attribute("d")); err != nil {
			g.log.Warn().Err(err).Str("icon", stem).Msg("suspect path data")
		}
	}
	return elements, nil
}

// formatSprite normalizes whitespace in the assembled document: blank
// lines are dropped and fixed indentation is applied by tag prefix.
// This is a textual pass, not a structural one.
func formatSprite(content string) string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		switch {
		case stripped == "":
		case strings.HasPrefix(stripped, "<symbol"), strings.HasPrefix(stripped, "</symbol>"):
			out = append(out, "  "+stripped)
		case strings.HasPrefix(stripped, "<path"):
			out = append(out, "    "+stripped)
		default:
			out = append(out, stripped)
		}
	}
	return strings.Join(out, "\n")
}

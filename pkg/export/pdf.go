package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"notedesk/pkg/render"
)

const pagePadding = 24.0

// PDFExporter writes a note's rendered preview to a single-page PDF.
// The page is sized to the preview surface plus padding, so the export
// mirrors what the preview pane showed rather than reflowing onto A4.
type PDFExporter struct {
	dir string
}

func NewPDFExporter(dir string) *PDFExporter {
	return &PDFExporter{dir: dir}
}

// Export writes <title>.pdf into the export directory and returns the
// full path. A failed write leaves no partial file behind.
func (e *PDFExporter) Export(title string, preview *render.Preview) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	width := preview.Width + 2*pagePadding
	height := preview.Height + 2*pagePadding

	orientation := "P"
	if height < width {
		orientation = "L"
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(pagePadding, pagePadding, pagePadding)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 20, title, "", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	html := pdf.HTMLBasicNew()
	html.Write(14, preview.HTML)

	path := filepath.Join(e.dir, SanitizeFilename(title)+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

// SanitizeFilename strips path separators and characters that are not
// portable across filesystems, falling back to "untitled".
func SanitizeFilename(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}

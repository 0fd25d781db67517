package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"notedesk/pkg/render"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "plain title", title: "Meeting Notes", want: "Meeting Notes"},
		{name: "path separators", title: "a/b\\c", want: "a_b_c"},
		{name: "reserved characters", title: `q:*?"<>|`, want: "q_______"},
		{name: "empty title", title: "   ", want: "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.title))
		})
	}
}

func TestExportWritesSinglePDF(t *testing.T) {
	dir := t.TempDir()
	exporter := NewPDFExporter(dir)

	preview := &render.Preview{
		NoteID: uuid.New(),
		HTML:   "<p>Hello <b>world</b></p>",
		Width:  600,
		Height: 800,
	}

	path, err := exporter.Export("Trip Plan", preview)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Trip Plan.pdf"), path)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportLandscapeForWideSurface(t *testing.T) {
	dir := t.TempDir()
	exporter := NewPDFExporter(dir)

	preview := &render.Preview{
		NoteID: uuid.New(),
		HTML:   "<p>wide</p>",
		Width:  1200,
		Height: 400,
	}

	path, err := exporter.Export("Wide Board", preview)
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

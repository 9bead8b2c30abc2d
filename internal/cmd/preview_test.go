package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/terragen/internal/grid"
	"github.com/MeKo-Tech/terragen/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewExporter(t *testing.T) {
	m := grid.New("island", grid.NewSize2d(2, 2))
	_, err := m.CreateAttributeFrom("height", []uint8{0, 64, 128, 255})
	require.NoError(t, err)

	dir := t.TempDir()
	exporter := &previewExporter{
		m:         m,
		outputDir: dir,
		opts:      render.Options{Scale: 2},
	}

	path, err := exporter.Export(context.Background(), "height")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "island_height.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPreviewExporterUnknownAttribute(t *testing.T) {
	m := grid.New("island", grid.NewSize2d(2, 2))

	exporter := &previewExporter{m: m, outputDir: t.TempDir()}

	_, err := exporter.Export(context.Background(), "rainfall")
	assert.Error(t, err)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/terragen/internal/grid"
	"github.com/MeKo-Tech/terragen/internal/render"
	"github.com/MeKo-Tech/terragen/internal/store"
	"github.com/MeKo-Tech/terragen/internal/worker"
)

var previewCmd = &cobra.Command{
	Use:   "preview <map>",
	Short: "Export PNG previews of a stored map",
	Long: `Preview loads a map from the database and exports a grayscale PNG per
attribute. Attributes are exported in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().String("output-dir", "./previews", "Output directory for preview PNGs")
	previewCmd.Flags().Int("scale", 1, "Integer upscale factor")
	previewCmd.Flags().Float32("blur", 0, "Gaussian blur sigma (0 disables)")
	previewCmd.Flags().Bool("invert", false, "Invert values before the palette is applied")
	previewCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	previewCmd.Flags().Bool("progress", true, "Show progress during export")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"preview.output_dir", "output-dir"},
		{"preview.scale", "scale"},
		{"preview.blur", "blur"},
		{"preview.invert", "invert"},
		{"preview.workers", "workers"},
		{"preview.progress", "progress"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, previewCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

// previewExporter renders one attribute of a loaded map to a PNG file.
type previewExporter struct {
	m         *grid.Map2d
	outputDir string
	opts      render.Options
}

func (e *previewExporter) Export(_ context.Context, attribute string) (string, error) {
	id := -1
	for i, name := range e.m.AttributeNames() {
		if name == attribute {
			id = i
			break
		}
	}
	if id < 0 {
		return "", fmt.Errorf("unknown attribute %q", attribute)
	}

	img := render.Preview(e.m.Attribute(id), render.Grayscale(), e.opts)
	path := filepath.Join(e.outputDir, fmt.Sprintf("%s_%s.png", e.m.Name(), attribute))
	if err := render.WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	database := viper.GetString("database")
	outputDir := viper.GetString("preview.output_dir")
	scale := viper.GetInt("preview.scale")
	blur := float32(viper.GetFloat64("preview.blur"))
	invert := viper.GetBool("preview.invert")
	workers := viper.GetInt("preview.workers")
	showProgress := viper.GetBool("preview.progress")

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	s, err := store.Open(database)
	if err != nil {
		return err
	}
	defer s.Close() // nolint:errcheck

	m, err := s.LoadMap(args[0])
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	opts := render.Options{Scale: scale, BlurSigma: blur}
	if invert {
		opts.Levels = render.InvertLevels()
	}

	names := m.AttributeNames()
	tasks := make([]worker.Task, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, worker.Task{Attribute: name})
	}

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers: workers,
		Exporter: &previewExporter{
			m:         m,
			outputDir: outputDir,
			opts:      opts,
		},
		OnProgress: progress.Callback(),
	})

	results := pool.Run(cmd.Context(), tasks)
	progress.Done()

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			logger.Error("Failed to export attribute", "attribute", result.Task.Attribute, "error", result.Err)
			continue
		}
		logger.Info("Exported attribute", "attribute", result.Task.Attribute, "path", result.Path, "elapsed", result.Elapsed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d attribute previews failed", failed, len(tasks))
	}

	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tverdal/edaplot/dataset"
	"github.com/tverdal/edaplot/plotspec"
	"github.com/tverdal/edaplot/render"
	"github.com/tverdal/edaplot/report"
)

// reportFileName is the markdown report emitted next to the images.
const reportFileName = "report.md"

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render exploratory charts for every explanatory column",
		Long: `Render loads a CSV dataset and its YAML metadata, builds one plot
specification per explanatory column, and rasterizes each to <out>/<column>.png.

Examples:
  # Render all plots with the default geometry
  edaplot render --data housing.csv --meta housing.yaml --out plots/

  # Larger charts plus a markdown report
  edaplot render --data housing.csv --meta housing.yaml --out plots/ \
    --width 1200 --height 700 --report`,
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("data", "d", "", "CSV dataset path (required)")
	cmd.Flags().StringP("meta", "m", "", "YAML metadata path (required)")
	cmd.Flags().StringP("out", "o", ".", "Output directory for rendered images")
	cmd.Flags().Bool("report", false, "Also write a markdown report to <out>/report.md")
	cmd.Flags().Int("width", render.DefaultWidth, "Chart width in pixels")
	cmd.Flags().Int("height", render.DefaultHeight, "Chart height in pixels")
	cmd.Flags().IntP("jobs", "j", runtime.GOMAXPROCS(0), "Concurrent render workers")

	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("meta")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildRenderConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	meta, err := dataset.LoadMetadataFile(cfg.metaPath)
	if err != nil {
		return fmt.Errorf("load metadata: %w", err)
	}
	ds, err := dataset.LoadCSVFile(cfg.dataPath, meta)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("dataset loaded", "rows", ds.Rows(), "columns", ds.Columns(), "response", ds.Response())

	coll, err := plotspec.BuildAll(ds, plotspec.DefaultOptions())
	if err != nil {
		return fmt.Errorf("build plots: %w", err)
	}

	if err = os.MkdirAll(cfg.outDir, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	images, err := renderAll(coll, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.writeReport {
		if err = writeReport(ds, coll, images, cfg.outDir); err != nil {
			return err
		}
		logger.Info("report written", "path", filepath.Join(cfg.outDir, reportFileName))
	}

	return nil
}

// renderAll rasterizes every spec concurrently and returns column → image
// path (relative to the output directory, for report embedding).
func renderAll(coll *plotspec.Collection, cfg renderConfig, logger *slog.Logger) (map[string]string, error) {
	ropts := render.Options{Width: cfg.width, Height: cfg.height}
	images := make(map[string]string, coll.Len())

	var g errgroup.Group
	g.SetLimit(cfg.jobs)
	for _, name := range coll.Names() {
		file := name + ".png"
		images[name] = file
		g.Go(func() error {
			spec, _ := coll.Get(name)
			png, err := render.Render(spec, ropts)
			if err != nil {
				return fmt.Errorf("render %q: %w", name, err)
			}
			path := filepath.Join(cfg.outDir, file)
			if err = os.WriteFile(path, png, 0o600); err != nil {
				return fmt.Errorf("write %q: %w", path, err)
			}
			logger.Debug("chart rendered", "column", name, "path", path)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return images, nil
}

// writeReport emits the markdown report next to the images.
func writeReport(ds *dataset.Dataset, coll *plotspec.Collection, images map[string]string, outDir string) error {
	f, err := os.Create(filepath.Join(outDir, reportFileName)) //nolint:gosec // user-chosen output dir
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	return report.NewWriter(f).Write(ds, coll, images)
}

// renderConfig carries the resolved render flags.
type renderConfig struct {
	dataPath, metaPath, outDir string
	width, height, jobs        int
	writeReport                bool
}

// buildRenderConfig reads flag values off the command.
func buildRenderConfig(cmd *cobra.Command) (renderConfig, error) {
	var cfg renderConfig
	var err error

	if cfg.dataPath, err = cmd.Flags().GetString("data"); err != nil {
		return cfg, err
	}
	if cfg.metaPath, err = cmd.Flags().GetString("meta"); err != nil {
		return cfg, err
	}
	if cfg.outDir, err = cmd.Flags().GetString("out"); err != nil {
		return cfg, err
	}
	if cfg.writeReport, err = cmd.Flags().GetBool("report"); err != nil {
		return cfg, err
	}
	if cfg.width, err = cmd.Flags().GetInt("width"); err != nil {
		return cfg, err
	}
	if cfg.height, err = cmd.Flags().GetInt("height"); err != nil {
		return cfg, err
	}
	if cfg.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return cfg, err
	}
	if cfg.jobs < 1 {
		cfg.jobs = 1
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}

	return verbose
}

// setupLogger builds the CLI logger; verbose enables debug records.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

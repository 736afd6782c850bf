// Package main provides the command line renderer for cactusplot.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RMahshie/cactusplot/internal/dataset"
	"github.com/RMahshie/cactusplot/internal/fitting"
	"github.com/RMahshie/cactusplot/internal/plot"
	"github.com/RMahshie/cactusplot/internal/storage"
	"github.com/RMahshie/cactusplot/pkg/models"
)

type options struct {
	output   string
	grid     bool
	noLegend bool
	light    bool
	fontSize string
	layout   string
	title    string
	fit      string
	rolling  int
	xTicks   string
	yTicks   string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cactusplot [files...]",
		Short: "Render CSV, XVG and XLSX datasets to PNG",
		Long: `cactusplot plots two-column numeric data files into a PNG.
With a 1x1 layout every file is drawn on one plot; other layouts put
one file in each subplot.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "plot.png", "Output PNG path")
	rootCmd.Flags().BoolVar(&opts.grid, "grid", false, "Draw grid lines")
	rootCmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "Hide the legend")
	rootCmd.Flags().BoolVar(&opts.light, "light", false, "Use the light theme")
	rootCmd.Flags().StringVar(&opts.fontSize, "font-size", "medium", "Label size: small, medium, large, extra_large")
	rootCmd.Flags().StringVar(&opts.layout, "layout", "1x1", "Subplot layout: 1x1, 1x2, 2x1, 2x2, 3x1, 1x3, 3x2, 2x3")
	rootCmd.Flags().StringVar(&opts.title, "title", "", "Plot title (1x1 only)")
	rootCmd.Flags().StringVar(&opts.fit, "fit", "", "Add a fitted curve per file: linear, sigmoid, hill")
	rootCmd.Flags().IntVar(&opts.rolling, "rolling", 0, "Add a rolling average with this window per file")
	rootCmd.Flags().StringVar(&opts.xTicks, "x-ticks", "", "Comma separated X tick values")
	rootCmd.Flags().StringVar(&opts.yTicks, "y-ticks", "", "Comma separated Y tick values")

	return rootCmd
}

func run(opts *options, files []string) error {
	fontSize, err := models.ParseFontSize(opts.fontSize)
	if err != nil {
		return err
	}
	layout, err := models.ParseSubplotLayout(opts.layout)
	if err != nil {
		return err
	}
	var fitModel models.FitModel
	if opts.fit != "" {
		if fitModel, err = models.ParseFitModel(opts.fit); err != nil {
			return err
		}
	}

	// One group of datasets per input file
	groups := make([][]models.Dataset, 0, len(files))
	count := 0
	for _, path := range files {
		ds, err := dataset.LoadFile(path, count)
		if err != nil {
			return err
		}
		if len(ds.Points) == 0 {
			log.Warn().Str("file", path).Msg("No valid data points found")
		}
		count++

		group := []models.Dataset{ds}
		if opts.rolling > 0 {
			avg, err := dataset.RollingAverageDataset(ds, opts.rolling)
			if err != nil {
				return fmt.Errorf("%s: %w", ds.Name, err)
			}
			avg.Color = dataset.DefaultColor(count)
			group = append(group, avg)
			count++
		}
		if fitModel != "" {
			if result := fitting.Fit(fitModel, ds); result != nil {
				group = append(group, fitting.FittedDataset(ds, result, count-1))
				count++
				log.Info().Str("dataset", ds.Name).Str("equation", result.Equation).Float64("rSquared", result.RSquared).Msg("Fitted curve")
			} else {
				log.Warn().Str("dataset", ds.Name).Str("model", string(fitModel)).Msg("Could not fit dataset")
			}
		}
		groups = append(groups, group)
	}

	xTicks := dataset.ParseTicks(opts.xTicks)
	yTicks := dataset.ParseTicks(opts.yTicks)
	customTicks := xTicks != nil || yTicks != nil

	renderOpts := plot.RenderOptions{
		ShowGrid:   opts.grid,
		ShowLegend: !opts.noLegend,
		DarkMode:   !opts.light,
		FontSize:   fontSize,
		Title:      opts.title,
	}

	var img *image.RGBA
	if layout == models.LayoutSingle {
		var all []models.Dataset
		for _, group := range groups {
			all = append(all, group...)
		}
		if customTicks {
			renderOpts.Axis = tickAxis(all, xTicks, yTicks)
		}
		img, err = plot.RenderPlot(all, renderOpts)
	} else {
		ws := models.NewWorkspace(layout)
		if len(groups) > len(ws.Subplots) {
			log.Warn().Int("files", len(groups)).Int("subplots", len(ws.Subplots)).Msg("More files than subplots, extra files are ignored")
		}
		for i := range ws.Subplots {
			if i >= len(groups) {
				break
			}
			sp := &ws.Subplots[i]
			sp.Datasets = groups[i]
			sp.Config.ShowGrid = opts.grid
			sp.Config.ShowLegend = !opts.noLegend
			sp.Config.Title = groups[i][0].Name
			if !customTicks {
				continue
			}
			if axis := tickAxis(groups[i], xTicks, yTicks); axis != nil {
				sp.Config.UseCustomBounds = true
				sp.Config.XMin, sp.Config.XMax = axis.XMin, axis.XMax
				sp.Config.YMin, sp.Config.YMax = axis.YMin, axis.YMax
				sp.Config.XPaddingPercent, sp.Config.YPaddingPercent = 0, 0
				sp.Config.XTicks = xTicks
				sp.Config.YTicks = yTicks
			}
		}
		img, err = plot.RenderSubplots(ws.Layout, ws.Subplots, renderOpts)
	}
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	data, err := plot.EncodePNGBytes(img)
	if err != nil {
		return err
	}
	if err := storage.WriteFileAtomic(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	bounds := img.Bounds()
	log.Info().Str("output", opts.output).Int("width", bounds.Dx()).Int("height", bounds.Dy()).Str("layout", string(layout)).Msg("Plot written")
	return nil
}

// tickAxis pins the automatic bounds of datasets so explicit ticks can be
// drawn without changing the axes. It returns nil when no point is finite.
func tickAxis(datasets []models.Dataset, xTicks, yTicks []float64) *models.AxisConfig {
	if _, ok := plot.DataBounds(datasets); !ok {
		return nil
	}
	b := plot.AutoBounds(datasets)
	return &models.AxisConfig{
		XMin:   models.Float(b.MinX),
		XMax:   models.Float(b.MaxX),
		YMin:   models.Float(b.MinY),
		YMax:   models.Float(b.MaxY),
		XTicks: xTicks,
		YTicks: yTicks,
	}
}

// Package pipeline provides the high-level orchestration for CV generation.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lbsa71/cv-generator/internal/config"
	"github.com/lbsa71/cv-generator/internal/history"
	"github.com/lbsa71/cv-generator/internal/ingestion"
	"github.com/lbsa71/cv-generator/internal/layout"
	"github.com/lbsa71/cv-generator/internal/observability"
	"github.com/lbsa71/cv-generator/internal/rendering"
	"github.com/lbsa71/cv-generator/internal/transform"
	"github.com/lbsa71/cv-generator/internal/types"
)

// backRefURL is the "generated with" link rendered at the document tail.
const backRefURL = "https://github.com/lbsa71/cv-generator"

// Output format names accepted in RunOptions.Formats.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	BundlePath string
	ConfigPath string
	OutputDir  string
	OutputName string   // base name without extension, defaults to "cv"
	Formats    []string // subset of {FormatPDF, FormatHTML}
	HistoryDir string   // empty disables run recording
	CheckOnly  bool     // stop after transform, write nothing
	Verbose    bool
}

// RunResult reports what a pipeline run produced.
type RunResult struct {
	Data          *types.TransformedCVData
	Outputs       []string
	PageCount     int
	DroppedSkills []string
}

// Run orchestrates the full generation: load config, ingest the export,
// transform, render the requested formats in parallel, record the run.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)
	if opts.OutputName == "" {
		opts.OutputName = "cv"
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{FormatPDF, FormatHTML}
	}
	for _, format := range opts.Formats {
		if format != FormatPDF && format != FormatHTML {
			return nil, fmt.Errorf("unknown output format %q", format)
		}
	}

	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bundle, err := ingestion.LoadBundle(ctx, opts.BundlePath)
	if err != nil {
		return nil, fmt.Errorf("loading export: %w", err)
	}
	if opts.Verbose {
		printer.PrintBundleSummary(bundle)
	}

	data, dropped, err := transform.Transform(bundle, cfg)
	if err != nil {
		return nil, fmt.Errorf("transforming export: %w", err)
	}
	if opts.Verbose {
		printer.PrintTransformedCV(data)
		printer.PrintDroppedSkills(dropped)
	}

	result := &RunResult{Data: data, DroppedSkills: dropped}
	if opts.CheckOnly {
		return result, nil
	}

	meta := layout.DocumentMeta{
		Phone:        cfg.Phone,
		ProfileRef:   cfg.ProfileRef,
		BackRef:      backRefURL,
		TrimLocation: cfg.TrimLocation,
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	outputs := make([]string, len(opts.Formats))
	var pageCount int

	group, groupCtx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		i, format := i, format
		switch format {
		case FormatPDF:
			group.Go(func() error {
				path, pages, err := renderPDF(groupCtx, data, meta, opts)
				if err != nil {
					return err
				}
				outputs[i] = path
				pageCount = pages
				return nil
			})
		case FormatHTML:
			group.Go(func() error {
				path, err := renderHTML(data, meta, opts)
				if err != nil {
					return err
				}
				outputs[i] = path
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result.Outputs = outputs
	result.PageCount = pageCount
	if opts.Verbose {
		printer.PrintOutputs(outputs)
	}

	if opts.HistoryDir != "" {
		if err := recordRun(opts, result); err != nil {
			// Outputs are already on disk; a failed history insert
			// must not fail the run.
			fmt.Fprintf(os.Stderr, "warning: recording run failed: %v\n", err)
		}
	}

	return result, nil
}

func renderPDF(ctx context.Context, data *types.TransformedCVData, meta layout.DocumentMeta, opts RunOptions) (string, int, error) {
	canvas := rendering.NewPageCanvas()
	layout.RenderDocument(canvas, data, meta)

	var assets []string
	if data.ImagePath != "" {
		assets = append(assets, data.ImagePath)
	}
	pdf, err := rendering.PrintHTMLToPDF(ctx, canvas.HTML(), assets)
	if err != nil {
		return "", 0, fmt.Errorf("rendering PDF: %w", err)
	}

	path := filepath.Join(opts.OutputDir, opts.OutputName+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return path, canvas.PageCount(), nil
}

func renderHTML(data *types.TransformedCVData, meta layout.DocumentMeta, opts RunOptions) (string, error) {
	htmlDoc, err := rendering.RenderHTML(data, meta)
	if err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}

	path := filepath.Join(opts.OutputDir, opts.OutputName+".html")
	if err := os.WriteFile(path, []byte(htmlDoc), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	// The document references the photo by basename, so it has to sit
	// next to the HTML file.
	if data.ImagePath != "" {
		dst := filepath.Join(opts.OutputDir, filepath.Base(data.ImagePath))
		if err := copyFile(data.ImagePath, dst); err != nil {
			return "", fmt.Errorf("copying photo: %w", err)
		}
	}
	return path, nil
}

func recordRun(opts RunOptions, result *RunResult) error {
	store, err := history.NewStore(opts.HistoryDir)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(&history.Run{
		BundlePath:    opts.BundlePath,
		ConfigPath:    opts.ConfigPath,
		Outputs:       result.Outputs,
		PositionCount: len(result.Data.Positions),
		PageCount:     result.PageCount,
		DroppedSkills: result.DroppedSkills,
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/fwojciec/legalindex"
	"github.com/fwojciec/legalindex/etree"
	"github.com/fwojciec/legalindex/export"
	"github.com/fwojciec/legalindex/fpdf"
	"github.com/fwojciec/legalindex/index"
	"github.com/fwojciec/legalindex/pdf"
	lislog "github.com/fwojciec/legalindex/slog"
	liyaml "github.com/fwojciec/legalindex/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Pages, Layout and Exporter override the wired implementations in
	// tests.
	Pages    legalindex.PageSource
	Layout   legalindex.LayoutSource
	Exporter legalindex.Exporter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input           string   `arg:"" required:"" help:"Path to the input PDF document"`
	Output          string   `short:"o" default:"legal_index.txt" help:"Output file path"`
	Format          string   `short:"f" help:"Output format: text, json, csv, xml, md or pdf (default: derived from the output extension)"`
	TermsOnly       bool     `help:"Index vocabulary terms and key phrases only; skip statutory and case-law patterns"`
	PageOffset      int      `help:"Subtract N from raw page numbers so front matter is excluded from numbering"`
	Vocab           string   `help:"Custom vocabulary YAML file (category: [terms])"`
	Columns         int      `default:"1" help:"Column count for the PDF layout"`
	Suppress        []string `help:"Category names to drop from every entry"`
	Context         string   `default:"none" enum:"none,snippet,headings" help:"Per-occurrence context detail"`
	NoSubcategories bool     `help:"Exclude per-category detail in the alphabetical index"`
	Stats           bool     `help:"Print indexing statistics"`
	Verbose         bool     `short:"v" help:"Enable verbose logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("legalindex"),
		kong.Description("Generate a comprehensive legal concept index from PDF documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Resolve the output format before any work happens so an
	// unsupported selection fails without touching the document.
	format := legalindex.FormatFromPath(cli.Output)
	if cli.Format != "" {
		format, err = legalindex.ParseFormat(cli.Format)
		if err != nil {
			return err
		}
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())

	vocab := legalindex.DefaultVocabulary()
	if cli.Vocab != "" {
		vocab, err = liyaml.LoadVocabulary(cli.Vocab)
		if err != nil {
			return err
		}
	}
	catalog := legalindex.DefaultCatalog()

	// Wire dependencies
	source := pdf.NewSource()
	pageSource := m.Pages
	if pageSource == nil {
		pageSource = lislog.NewLoggingPageSource(source, logger)
	}
	layoutSource := m.Layout
	if layoutSource == nil {
		layoutSource = lislog.NewLoggingLayoutSource(source, logger)
	}

	pages, err := pageSource.ExtractPages(ctx, cli.Input)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return legalindex.Errorf(legalindex.EINVALID, "no pages extracted from %s", cli.Input)
	}
	fmt.Fprintf(stdout, "Extracted text from %d pages\n", len(pages))

	// Outline inference is best-effort; a layout read failure degrades
	// to an empty outline.
	layout, err := layoutSource.ExtractLayout(ctx, cli.Input)
	if err != nil {
		logger.Warn("outline inference skipped", "err", err)
		layout = nil
	}
	outline, paths := legalindex.BuildOutline(layout, cli.PageOffset)

	opts := []index.Option{index.WithPageOffset(cli.PageOffset)}
	if cli.TermsOnly {
		opts = append(opts, index.WithTermsOnly())
	}
	ix := index.New(catalog, vocab, opts...)

	var headings []string
	for i, page := range pages {
		if (i+1)%10 == 0 || i+1 == len(pages) {
			logger.Info("processing pages", "done", i+1, "total", len(pages))
		}
		if path, ok := paths[page.Page-cli.PageOffset]; ok {
			headings = path
		}
		ix.IndexPage(page.Text, page.Page, headings)
		ix.ExtractPhrases(page.Text, page.Page, headings)
	}
	ix.BuildCrossReferences()
	idx := ix.Index()
	fmt.Fprintf(stdout, "Identified %d unique legal concepts and terms\n", len(idx.Entries))

	projection := legalindex.NewProjection(idx, outline, legalindex.ExportOptions{
		TermsOnly:            cli.TermsOnly,
		SuppressCategories:   cli.Suppress,
		ContextStyle:         legalindex.ContextStyle(cli.Context),
		Columns:              cli.Columns,
		IncludeSubcategories: !cli.NoSubcategories,
	})

	exporter := m.Exporter
	if exporter == nil {
		exporter = exporterFor(format)
	}
	if err := save(cli.Output, exporter, projection); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Index saved to: %s\n", cli.Output)

	if cli.Stats {
		printStats(stdout, legalindex.ComputeStats(idx, pages))
	}

	return nil
}

// exporterFor selects the exporter for a validated format.
func exporterFor(format legalindex.Format) legalindex.Exporter {
	switch format {
	case legalindex.FormatJSON:
		return export.NewJSONExporter()
	case legalindex.FormatCSV:
		return export.NewCSVExporter()
	case legalindex.FormatXML:
		return etree.NewExporter()
	case legalindex.FormatMarkdown:
		return export.NewMarkdownExporter()
	case legalindex.FormatPDF:
		return fpdf.NewExporter()
	default:
		return export.NewTextExporter()
	}
}

// save renders the projection to the output path. Indexing has already
// succeeded by the time this runs; a write failure fails the save only.
func save(path string, exporter legalindex.Exporter, p *legalindex.Projection) error {
	f, err := os.Create(path)
	if err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "creating output file %s: %v", path, err)
	}
	if err := exporter.Export(f, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing output file %s: %v", path, err)
	}
	return nil
}

func printStats(w io.Writer, stats legalindex.Stats) {
	fmt.Fprintln(w, "\nIndexing Statistics:")
	fmt.Fprintf(w, "Total terms indexed: %d\n", stats.TotalTerms)
	fmt.Fprintf(w, "Total pages: %d\n", stats.TotalPages)
	fmt.Fprintf(w, "Pages with content: %d\n", stats.PagesWithContent)
	fmt.Fprintln(w, "\nTerms by category:")
	cats := make([]string, 0, len(stats.TermsByCategory))
	for cat := range stats.TermsByCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(w, "  %s: %d\n", cat, stats.TermsByCategory[cat])
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gnomegl/urlsx/internal/cli"
	"github.com/gnomegl/urlsx/internal/client"
	"github.com/gnomegl/urlsx/internal/core"
	"github.com/gnomegl/urlsx/internal/utils"
)

var config cli.Config

var rootCmd = &cobra.Command{
	Use:   "urlsx",
	Short: "Find live asset URLs by expanding templates and probing candidates",
	Long: `urlsx expands a bracketed URL template against user-supplied tag values
into a bounded candidate set, then probes the candidates concurrently until
one answers HTTP 200.

Features:
  - Built-in gacha and banner templates, or any custom template with [A]-style tags
  - Gacha name expansion (casing variants plus -2..-6 suffixes)
  - Concurrent batched probing with pacing and first-match cancellation
  - Proxy support (single proxy or proxies.txt file rotation)
  - Candidate listing and CSV/JSON/XLSX export`,
	Version: core.Version,
	RunE:    runSearch,
}

func init() {
	rootCmd.Flags().StringVarP(&config.Mode, "mode", "M", cli.ModeGacha, "Template mode (gacha, banner, custom)")
	rootCmd.Flags().StringVarP(&config.Template, "template", "T", "", "Custom template with [A]-style tags (custom mode)")
	rootCmd.Flags().StringArrayVarP(&config.TagSpecs, "tag", "g", []string{}, "Tag values as TAG=v1,v2 (repeatable)")
	rootCmd.Flags().BoolVarP(&config.ListOnly, "list", "l", false, "Generate and list candidates without probing")
	rootCmd.Flags().BoolVarP(&config.NoColor, "no-color", "C", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&config.NoProgressbar, "no-progressbar", "P", false, "Disable interactive progress UI")
	rootCmd.Flags().StringVarP(&config.Proxy, "proxy", "p", "", "Proxy server (http://proxy:port, socks5://proxy:port)")
	rootCmd.Flags().StringVarP(&config.ProxyFile, "proxy-file", "F", "", "File containing proxies (one per line)")
	rootCmd.Flags().IntVarP(&config.Timeout, "timeout", "t", core.GetProbeTimeoutSeconds, "Overall request timeout in seconds")
	rootCmd.Flags().BoolVarP(&config.AllowRedirect, "allow-redirects", "A", false, "Follow HTTP redirects")
	rootCmd.Flags().BoolVarP(&config.VerifySSL, "verify-ssl", "V", false, "Verify SSL certificates")
	rootCmd.Flags().StringVarP(&config.Impersonate, "impersonate", "i", "chrome", "Browser to impersonate (chrome, firefox, safari, edge)")
	rootCmd.Flags().IntVarP(&config.Workers, "workers", "w", core.DefaultWorkers, "Concurrent probe workers")
	rootCmd.Flags().IntVarP(&config.BatchSize, "batch-size", "b", core.DefaultBatchSize, "URLs probed per batch")
	rootCmd.Flags().IntVarP(&config.PaceMillis, "pace", "s", int(core.DefaultPace/time.Millisecond), "Pause between batches in milliseconds")
	rootCmd.Flags().IntVarP(&config.MaxCombinations, "max-combinations", "m", core.MaxCombinations, "Combination ceiling for the expander")
	rootCmd.Flags().BoolVarP(&config.ShowDetails, "show-details", "d", false, "Show detailed output")
	rootCmd.Flags().BoolVarP(&config.CSVExport, "csv", "c", false, "Output candidates as CSV to stdout")
	rootCmd.Flags().StringVarP(&config.CSVPath, "csv-output", "", "", "Export candidates to CSV file")
	rootCmd.Flags().BoolVarP(&config.JSONExport, "json", "j", false, "Output as JSON to stdout")
	rootCmd.Flags().StringVarP(&config.JSONPath, "json-output", "", "", "Export to JSON file")
	rootCmd.Flags().StringVarP(&config.XLSXPath, "xlsx", "x", "", "Export to XLSX file (path required)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := utils.ValidateNumericValues(config.Workers, config.BatchSize, config.Timeout); err != nil {
		return err
	}

	if config.Proxy != "" {
		if err := utils.ValidateProxy(config.Proxy); err != nil {
			return err
		}
	}

	tagValues, err := cli.ParseTagValues(config.TagSpecs)
	if err != nil {
		return err
	}

	template, err := cli.ResolveTemplate(&config)
	if err != nil {
		return err
	}

	expander := core.NewExpander(config.MaxCombinations)

	var candidates []string
	if config.Mode == cli.ModeBanner {
		candidates, err = expander.ExpandBanner(tagValues)
	} else {
		candidates, err = expander.Expand(template, tagValues)
	}
	var tooMany *core.TooManyCombinationsError
	if errors.As(err, &tooMany) {
		return tooMany
	}
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		missing := cli.MissingTags(template, tagValues)
		if len(missing) > 0 {
			return core.NewValidationError(
				fmt.Sprintf("No candidates generated: missing values for tag(s) [%s]", strings.Join(missing, "] [")),
				nil,
			)
		}
		return core.NewValidationError("No candidates generated: template has no tags", nil)
	}

	fmt.Printf("Generated %d candidate URL(s)\n", len(candidates))

	if config.ListOnly {
		return listCandidates(candidates, template)
	}

	report, err := probeCandidates(cmd.Context(), candidates)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSummary(report, config.ShowDetails))

	if shouldExport() {
		exportResults(report, candidates, template)
	}

	return nil
}

func listCandidates(candidates []string, template string) error {
	if shouldExport() {
		exportResults(nil, candidates, template)
		return nil
	}
	for _, url := range candidates {
		fmt.Println(url)
	}
	return nil
}

func probeCandidates(ctx context.Context, candidates []string) (*core.SearchReport, error) {
	clientConfig := client.ClientConfig{
		Timeout:       config.Timeout,
		VerifySSL:     config.VerifySSL,
		AllowRedirect: config.AllowRedirect,
		Impersonate:   client.BrowserImpersonation(config.Impersonate),
		Proxy:         config.Proxy,
		ProxyFile:     config.ProxyFile,
	}

	httpClient, err := client.NewHTTPClient(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	defer httpClient.CloseIdleConnections()

	prober := core.NewProber(httpClient, core.DefaultProbeConfig())
	searcher := core.NewSearcher(prober, core.SearchConfig{
		Workers:   config.Workers,
		BatchSize: config.BatchSize,
		Pace:      time.Duration(config.PaceMillis) * time.Millisecond,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if config.NoProgressbar {
		report := searcher.Search(runCtx, candidates, core.NewBarReporter(&cli.LineSink{Out: os.Stdout}))
		fmt.Println()
		return report, nil
	}

	program := tea.NewProgram(cli.NewProgressModel(len(candidates)))

	done := make(chan *core.SearchReport, 1)
	go func() {
		done <- searcher.Search(runCtx, candidates, cli.NewTeaReporter(program))
		program.Send(cli.DoneMsg{})
	}()

	model, uiErr := program.Run()
	if uiErr != nil {
		cancel()
	} else if m, ok := model.(cli.ProgressModel); ok && m.Quitting() {
		cancel()
	}

	return <-done, nil
}

func shouldExport() bool {
	return config.CSVExport || config.CSVPath != "" || config.JSONExport || config.JSONPath != "" || config.XLSXPath != ""
}

func exportResults(report *core.SearchReport, candidates []string, template string) {
	exporter := cli.NewExporter(report, candidates, template)

	if config.CSVExport {
		if err := exporter.ExportCSV(""); err != nil {
			fmt.Printf("Error exporting CSV: %v\n", err)
		}
	}

	if config.CSVPath != "" {
		if err := exporter.ExportCSV(config.CSVPath); err != nil {
			fmt.Printf("Error exporting CSV: %v\n", err)
		}
	}

	if config.JSONExport {
		if err := exporter.ExportJSON(""); err != nil {
			fmt.Printf("Error exporting JSON: %v\n", err)
		}
	}

	if config.JSONPath != "" {
		if err := exporter.ExportJSON(config.JSONPath); err != nil {
			fmt.Printf("Error exporting JSON: %v\n", err)
		}
	}

	if config.XLSXPath != "" {
		if err := exporter.ExportXLSX(config.XLSXPath); err != nil {
			fmt.Printf("Error exporting XLSX: %v\n", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

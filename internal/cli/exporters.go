package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gnomegl/urlsx/internal/core"
)

// Exporter writes the generated candidate set and, when a search ran, its
// report. With a nil report only the candidate list is exported (list mode).
type Exporter struct {
	Report     *core.SearchReport
	Candidates []string
	Template   string
	Timestamp  time.Time
}

func NewExporter(report *core.SearchReport, candidates []string, template string) *Exporter {
	return &Exporter{
		Report:     report,
		Candidates: candidates,
		Template:   template,
		Timestamp:  time.Now(),
	}
}

func (e *Exporter) ExportCSV(path string) error {
	var writer *csv.Writer
	var file *os.File
	var err error

	if path == "" {
		writer = csv.NewWriter(os.Stdout)
	} else {
		file, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer file.Close()
		writer = csv.NewWriter(file)
	}
	defer writer.Flush()

	header := []string{"Index", "URL"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, url := range e.Candidates {
		row := []string{strconv.Itoa(i), url}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	if path != "" {
		fmt.Printf("Exported to CSV: %s\n", path)
	}
	return nil
}

func (e *Exporter) ExportJSON(path string) error {
	data := map[string]interface{}{
		"template":   e.Template,
		"timestamp":  e.Timestamp.Format(time.RFC3339),
		"candidates": e.Candidates,
		"total":      len(e.Candidates),
	}
	if e.Report != nil {
		data["report"] = e.Report
	}

	var encoder *json.Encoder
	if path == "" {
		encoder = json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()
	encoder = json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Printf("Exported to JSON: %s\n", path)
	return nil
}

func (e *Exporter) ExportXLSX(path string) error {
	if path == "" {
		path = fmt.Sprintf("urlsx_results_%s.xlsx", e.Timestamp.Format("20060102_150405"))
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to set sheet name: %w", err)
	}

	summary := [][]interface{}{
		{"Template", e.Template},
		{"Timestamp", e.Timestamp.Format(time.RFC3339)},
		{"Candidates", len(e.Candidates)},
	}
	if e.Report != nil {
		status := "not found"
		if e.Report.Found {
			status = "found"
		}
		summary = append(summary,
			[]interface{}{"Status", status},
			[]interface{}{"Found URL", e.Report.FoundURL},
			[]interface{}{"Checked", e.Report.Checked},
			[]interface{}{"Dead", e.Report.Dead},
			[]interface{}{"Errors", e.Report.Errors},
			[]interface{}{"Elapsed (s)", e.Report.Elapsed},
		)
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	const candidateSheet = "Candidates"
	if _, err := f.NewSheet(candidateSheet); err != nil {
		return fmt.Errorf("failed to create candidates sheet: %w", err)
	}
	headerRow := []interface{}{"Index", "URL"}
	if err := f.SetSheetRow(candidateSheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write candidates header: %w", err)
	}
	for i, url := range e.Candidates {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []interface{}{i, url}
		if err := f.SetSheetRow(candidateSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write candidate row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save XLSX file: %w", err)
	}
	fmt.Printf("Exported to XLSX: %s\n", path)
	return nil
}

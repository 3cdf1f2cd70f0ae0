package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gnomegl/urlsx/internal/core"
)

func sampleExporter() *Exporter {
	report := &core.SearchReport{
		Total:    3,
		Checked:  2,
		Dead:     1,
		Found:    true,
		FoundURL: "https://host/a-1.jpg",
	}
	candidates := []string{
		"https://host/a-0.jpg",
		"https://host/a-1.jpg",
		"https://host/a-2.jpg",
	}
	return NewExporter(report, candidates, "https://host/a-[N].jpg")
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	e := sampleExporter()
	require.NoError(t, e.ExportCSV(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Index", "URL"}, rows[0])
	assert.Equal(t, []string{"1", "https://host/a-1.jpg"}, rows[2])
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	e := sampleExporter()
	require.NoError(t, e.ExportJSON(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data struct {
		Template   string             `json:"template"`
		Total      int                `json:"total"`
		Candidates []string           `json:"candidates"`
		Report     *core.SearchReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, "https://host/a-[N].jpg", data.Template)
	assert.Equal(t, 3, data.Total)
	assert.Len(t, data.Candidates, 3)
	require.NotNil(t, data.Report)
	assert.True(t, data.Report.Found)
	assert.Equal(t, "https://host/a-1.jpg", data.Report.FoundURL)
}

func TestExportJSONWithoutReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.json")
	e := NewExporter(nil, []string{"https://host/x.jpg"}, "https://host/[A].jpg")
	require.NoError(t, e.ExportJSON(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &data))
	_, hasReport := data["report"]
	assert.False(t, hasReport)
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	e := sampleExporter()
	require.NoError(t, e.ExportXLSX(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	url, err := f.GetCellValue("Candidates", "B3")
	require.NoError(t, err)
	assert.Equal(t, "https://host/a-1.jpg", url)

	label, err := f.GetCellValue("Summary", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Status", label)
	status, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "found", status)
}

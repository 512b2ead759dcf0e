package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"ID", "Employee", "Status"},
		Rows: []map[string]string{
			{"ID": "LR-001", "Employee": "Anjali Verma", "Status": "Pending"},
			{"ID": "LR-002", "Employee": "Rahul, Mehta"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	require.Equal(t, "ID,Employee,Status\nLR-001,Anjali Verma,Pending\nLR-002,\"Rahul, Mehta\",\n", string(out))

	withBOM, err := (&CSVExporter{BOM: true}).Render(sampleDataset())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(withBOM), "\ufeffID"))

	_, err = NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "Leave Requests")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "%PDF"))

	_, err = NewPDFExporter().Render(Dataset{}, "")
	require.Error(t, err)
}

func TestColumnWidthsFillPrintableWidth(t *testing.T) {
	widths := columnWidths(sampleDataset(), 190)
	require.Len(t, widths, 3)
	var total float64
	for _, w := range widths {
		total += w
	}
	require.InDelta(t, 190, total, 0.5)
	require.Greater(t, widths[1], widths[0])
}

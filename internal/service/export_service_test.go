package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/pkg/export"
	"github.com/noah-isme/sma-dashboard-api/pkg/storage"
)

func newSeededCatalog(t *testing.T) (*Catalog, seededStore) {
	t.Helper()
	store := newSeededStore(t, ResourceLeaveRequests, ResourceAssets, ResourcePayroll)
	catalog := NewCatalog()
	require.NoError(t, RegisterResources(catalog, store.records, store.audit, 5, nil))
	return catalog, store
}

func newExportServiceForTest(t *testing.T) (*ExportService, *storage.LocalStorage) {
	t.Helper()
	catalog, _ := newSeededCatalog(t)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("secret", time.Hour)
	cfg := ExportConfig{APIPrefix: "/api/v1", ResultTTL: time.Hour}
	svc := NewExportService(catalog, store, signer, cfg, zap.NewNop(), export.NewCSVExporter(), export.NewPDFExporter())
	return svc, store
}

func TestExportServiceGenerateCSV(t *testing.T) {
	svc, store := newExportServiceForTest(t)
	job := &models.ExportJob{
		ID:       "job-1",
		Resource: ResourceLeaveRequests,
		Params: models.ExportJobParams{
			Format:  models.ExportFormatCSV,
			Filters: map[string]string{"status": "Pending"},
		},
		CreatedBy: "hr-1",
	}

	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	require.Equal(t, 6, result.Rows)
	require.True(t, strings.HasPrefix(result.URL, "/api/v1/exports/job-1/download?token="))
	require.Equal(t, result.Token, tokenFromURL(result.URL))

	content, err := os.ReadFile(filepath.Join(store.Root(), result.RelativePath))
	require.NoError(t, err)
	require.Contains(t, string(content), "Anjali Verma")
	require.NotContains(t, string(content), "Rahul Mehta")

	jobID, relPath, _, err := svc.ParseToken(result.Token, false)
	require.NoError(t, err)
	require.Equal(t, "job-1", jobID)
	require.Equal(t, result.RelativePath, relPath)
}

func TestExportServiceGeneratePDF(t *testing.T) {
	svc, store := newExportServiceForTest(t)
	job := &models.ExportJob{
		ID:       "job-2",
		Resource: ResourceAssets,
		Params:   models.ExportJobParams{Format: models.ExportFormatPDF},
	}

	result, err := svc.Generate(context.Background(), job)
	require.NoError(t, err)
	require.Equal(t, models.ExportFormatPDF, result.Format)

	content, err := os.ReadFile(filepath.Join(store.Root(), result.RelativePath))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestExportServiceGenerateUnknownResource(t *testing.T) {
	svc, _ := newExportServiceForTest(t)
	_, err := svc.Generate(context.Background(), &models.ExportJob{
		ID:       "job-3",
		Resource: "invoices",
		Params:   models.ExportJobParams{Format: models.ExportFormatCSV},
	})
	require.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "na", sanitizeFilename(""))
	require.Equal(t, "leave-requests_a-b", sanitizeFilename("leave-requests a/b"))
	require.Len(t, sanitizeFilename(strings.Repeat("x", 150)), 100)
}

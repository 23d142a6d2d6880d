package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
	"github.com/hsuanlin/overtime-tracker/internal/store"
)

func sampleRecord() *store.SessionRecord {
	return &store.SessionRecord{
		RecognitionResults: []entity.OvertimeEntry{
			{EmployeeName: "Chen Wei", Date: "2025-11-22", StartTime: "18:00", EndTime: "20:00", Reason: "quarterly closing", Type: "overtime pay", Hours: 2},
			{EmployeeName: "Lin Yu-ting", Date: "2025-11-23", StartTime: "09:00", EndTime: "12:30", Reason: "system migration", Type: "comp time", Hours: 3.5},
		},
		TotalEntries: 2,
	}
}

func TestExportCSV(t *testing.T) {
	out, err := NewService(nil).ExportCSV(sampleRecord())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"Chen Wei", "2025-11-22", "18:00", "20:00", "quarterly closing", "overtime pay", "2"}, rows[1])
	assert.Equal(t, "3.5", rows[2][6])
}

func TestExportCSV_EmptyRecord(t *testing.T) {
	out, err := NewService(nil).ExportCSV(&store.SessionRecord{})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestExportXLSX(t *testing.T) {
	out, err := NewService(nil).ExportXLSX(sampleRecord())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Overtime")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "Chen Wei", rows[1][0])
	assert.Equal(t, "2025-11-22", rows[1][1])
	assert.Equal(t, "2", rows[1][6])
	assert.Equal(t, "Lin Yu-ting", rows[2][0])
}

package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func seedLeads(t *testing.T, db *ent.Client) {
	ctx := context.Background()

	_, err := db.Lead.Create().
		SetFirstName("Dana").
		SetLastName("Rivera").
		SetEmail("dana@acme.com").
		SetCompany("Acme Corp").
		SetUtmSource("linkedin").
		SetUtmMedium("social").
		SetUtmCampaign("holiday-wellness").
		SetLeadScore(80).
		SetConversionValue(175).
		Save(ctx)
	require.NoError(t, err)

	_, err = db.Lead.Create().
		SetFirstName("Sam").
		SetLastName("Okafor").
		SetEmail("sam@example.com").
		SetLeadScore(20).
		Save(ctx)
	require.NoError(t, err)
}

func TestWriteCSV(t *testing.T) {
	db := setupTestDB(t)
	seedLeads(t, db)
	service := NewService(db)

	var buf bytes.Buffer
	require.NoError(t, service.WriteCSV(context.Background(), &buf, Filters{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportHeaders, records[0])

	// Newest first, so Sam before Dana when timestamps differ; both rows
	// must be present regardless of ordering.
	emails := []string{records[1][3], records[2][3]}
	assert.Contains(t, emails, "dana@acme.com")
	assert.Contains(t, emails, "sam@example.com")

	for _, row := range records[1:] {
		require.Len(t, row, len(exportHeaders))
		if row[3] == "dana@acme.com" {
			assert.Equal(t, "linkedin", row[11])
			assert.Equal(t, "80", row[15])
			assert.Equal(t, "175.00", row[16])
		}
	}
}

func TestWriteCSV_Filters(t *testing.T) {
	db := setupTestDB(t)
	seedLeads(t, db)
	service := NewService(db)
	ctx := context.Background()

	t.Run("min score", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, service.WriteCSV(ctx, &buf, Filters{MinScore: 60}))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "dana@acme.com", records[1][3])
	})

	t.Run("source", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, service.WriteCSV(ctx, &buf, Filters{Source: "linkedin"}))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "dana@acme.com", records[1][3])
	})

	t.Run("no matches leaves only the header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, service.WriteCSV(ctx, &buf, Filters{Status: "closed"}))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}

func TestWriteExcel(t *testing.T) {
	db := setupTestDB(t)
	seedLeads(t, db)
	service := NewService(db)

	var buf bytes.Buffer
	require.NoError(t, service.WriteExcel(context.Background(), &buf, Filters{}))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "First Name", rows[0][1])

	emails := []string{rows[1][3], rows[2][3]}
	assert.Contains(t, emails, "dana@acme.com")
	assert.Contains(t, emails, "sam@example.com")
}

func TestContentTypeAndFilename(t *testing.T) {
	assert.Equal(t, "text/csv", ContentType("csv"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ContentType("excel"))
	assert.Equal(t, "vivwell-leads-20260831.csv", Filename("csv", "20260831"))
	assert.Equal(t, "vivwell-leads-20260831.xlsx", Filename("excel", "20260831"))
}

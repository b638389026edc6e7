package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedFixture = `{
  "books": [
    {"id": "B1", "title": "Dune", "author": "Frank Herbert", "isbn": "978-0441172719"},
    {"id": "B1", "title": "Duplicate", "author": "X", "isbn": "Y"}
  ],
  "magazines": [
    {"id": "G1", "title": "Weekly", "issue_date": "2026-02-01", "issue_number": 9},
    {"id": "G2", "title": "Broken", "issue_date": "02/01/2026", "issue_number": 10}
  ],
  "members": [
    {"id": "M1", "name": "Alice", "email": "alice@example.com"}
  ]
}`

func writeSeed(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAndApplySeedCatalog(t *testing.T) {
	catalog, err := LoadCatalog(writeSeed(t, seedFixture))
	require.NoError(t, err)

	lib := New(Config{DailyFineRate: decimal.Zero})
	report := catalog.Apply(lib)

	assert.Equal(t, 3, report.Added)
	require.Len(t, report.Skipped, 2)
	assert.Contains(t, report.Skipped[0], `book "B1"`)
	assert.Contains(t, report.Skipped[1], "bad issue date")

	magazine, ok := lib.FindItem("G1")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), magazine.(*Magazine).IssueDate())

	_, ok = lib.FindMember("M1")
	assert.True(t, ok)

	items := lib.AllItems()
	require.Len(t, items, 2)
	assert.Equal(t, "Dune", items[0].Title())
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = LoadCatalog(writeSeed(t, "{not json"))
	require.Error(t, err)
}

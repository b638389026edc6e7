package library

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Catalog is a JSON seed file: an initial set of items and members to load
// into a fresh engine at startup. Nothing is ever written back to the file;
// the in-memory state is still discarded on exit.
type Catalog struct {
	Books     []SeedBook     `json:"books"`
	Magazines []SeedMagazine `json:"magazines"`
	Members   []SeedMember   `json:"members"`
}

// SeedBook is one book entry of a seed catalog.
type SeedBook struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// SeedMagazine is one magazine entry. IssueDate must be an ISO calendar date
// (YYYY-MM-DD).
type SeedMagazine struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IssueDate   string `json:"issue_date"`
	IssueNumber int    `json:"issue_number"`
}

// SeedMember is one member entry of a seed catalog.
type SeedMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SeedReport summarizes what Apply did with each catalog entry.
type SeedReport struct {
	Added   int
	Skipped []string
}

// LoadCatalog reads and decodes a seed catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}
	var c Catalog
	if err := jsoniter.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	return &c, nil
}

// Apply registers every catalog entry with the engine. Entries that fail —
// duplicate identifiers, malformed issue dates — are skipped with a reason
// rather than aborting the whole load, so one bad row never blocks a seed.
func (c *Catalog) Apply(lib *Library) SeedReport {
	var report SeedReport

	for _, b := range c.Books {
		if err := lib.AddItem(NewBook(b.ID, b.Title, b.Author, b.ISBN)); err != nil {
			report.Skipped = append(report.Skipped, fmt.Sprintf("book %q: %v", b.ID, err))
			continue
		}
		report.Added++
	}

	for _, m := range c.Magazines {
		issued, err := time.Parse("2006-01-02", m.IssueDate)
		if err != nil {
			report.Skipped = append(report.Skipped, fmt.Sprintf("magazine %q: bad issue date %q", m.ID, m.IssueDate))
			continue
		}
		if err := lib.AddItem(NewMagazine(m.ID, m.Title, issued, m.IssueNumber)); err != nil {
			report.Skipped = append(report.Skipped, fmt.Sprintf("magazine %q: %v", m.ID, err))
			continue
		}
		report.Added++
	}

	for _, mem := range c.Members {
		if err := lib.AddMember(NewMember(mem.ID, mem.Name, mem.Email)); err != nil {
			report.Skipped = append(report.Skipped, fmt.Sprintf("member %q: %v", mem.ID, err))
			continue
		}
		report.Added++
	}

	return report
}

package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/vocab"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeEntryRepo struct {
	byTerm  map[string]*vocab.Entry
	created []*vocab.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{byTerm: map[string]*vocab.Entry{}}
}

func (f *fakeEntryRepo) Create(ctx context.Context, e *vocab.Entry) error {
	f.byTerm[e.Term] = e
	f.created = append(f.created, e)
	return nil
}
func (f *fakeEntryRepo) Get(ctx context.Context, id string) (*vocab.Entry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) ByTerm(ctx context.Context, term string) (*vocab.Entry, error) {
	return f.byTerm[term], nil
}
func (f *fakeEntryRepo) All(ctx context.Context) ([]*vocab.Entry, error) { return nil, nil }
func (f *fakeEntryRepo) SaveEnrichment(ctx context.Context, id, definition string, examples []string, mnemonic string) error {
	return nil
}

type fakeItemRepo struct {
	created []*srs.LearningItem
}

func (f *fakeItemRepo) Create(ctx context.Context, it *srs.LearningItem) error {
	f.created = append(f.created, it)
	return nil
}
func (f *fakeItemRepo) Get(ctx context.Context, id string) (*srs.LearningItem, error) {
	return nil, nil
}
func (f *fakeItemRepo) All(ctx context.Context) ([]*srs.LearningItem, error) { return nil, nil }
func (f *fakeItemRepo) Save(ctx context.Context, it *srs.LearningItem) error { return nil }

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test CSV: %v", err)
	}
	return path
}

func TestImport_CSV(t *testing.T) {
	path := writeTestCSV(t, `term,translation,part_of_speech,tier,topic
haus,house,noun,a1,home
gehen,to go,verb,A1,movement
schnell,fast,adjective,,
`)

	entries := newFakeEntryRepo()
	items := &fakeItemRepo{}
	im := New(entries, items)

	res, err := im.Import(context.Background(), path, testNow)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	if res.Processed != 3 || res.Created != 3 || res.Skipped != 0 {
		t.Errorf("result = %+v", res)
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if len(items.created) != 3 {
		t.Fatalf("created %d items, want 3", len(items.created))
	}

	e := entries.byTerm["gehen"]
	if e == nil || e.Tier != srs.TierA1 {
		t.Errorf("tier should be canonicalized: %+v", e)
	}

	it := items.created[0]
	if it.Stage != srs.StageIntroducing || it.EntryID != entries.created[0].ID {
		t.Errorf("item = %+v", it)
	}
	if it.Tier != entries.created[0].Tier {
		t.Errorf("item tier %q should copy entry tier %q", it.Tier, entries.created[0].Tier)
	}
}

func TestImport_CSVSkipsExistingAndReportsBadRows(t *testing.T) {
	path := writeTestCSV(t, `term,translation
haus,house
haus,house
,missing term
nomatch,
katze,cat
brot,bread,noun,z9,food
`)

	entries := newFakeEntryRepo()
	im := New(entries, &fakeItemRepo{})

	res, err := im.Import(context.Background(), path, testNow)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	if res.Created != 2 { // haus, katze
		t.Errorf("Created = %d, want 2", res.Created)
	}
	if res.Skipped != 1 { // duplicate haus
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
	if len(res.Errors) != 3 { // missing term, missing translation, bad tier
		t.Errorf("Errors = %v, want 3", res.Errors)
	}
}

func TestImport_XLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"term", "translation", "part_of_speech", "tier", "topic"},
		{"haus", "house", "noun", "a1", "home"},
		{"laufen", "to run", "verb", "b1", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			t.Fatalf("build test xlsx: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "words.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save test xlsx: %v", err)
	}

	entries := newFakeEntryRepo()
	im := New(entries, &fakeItemRepo{})

	res, err := im.Import(context.Background(), path, testNow)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if res.Created != 2 || len(res.Errors) != 0 {
		t.Errorf("result = %+v", res)
	}
	if entries.byTerm["laufen"] == nil {
		t.Error("expected laufen to be imported")
	}
}

func TestImport_UnsupportedExtension(t *testing.T) {
	im := New(newFakeEntryRepo(), &fakeItemRepo{})
	if _, err := im.Import(context.Background(), "words.txt", testNow); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

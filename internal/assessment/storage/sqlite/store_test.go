package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/assessment/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func sampleAnswers() form.AnswerSet {
	return form.AnswerSet{
		Empresa:               "Acme",
		Email:                 "ceo@acme.com",
		Sector:                "Finanzas",
		Tecnologias:           []string{"Correo electrónico", "Teletrabajo"},
		MantenimientoTI:       "Proveedor externo",
		HerramientasSeguridad: "Antivirus básico",
		Formacion:             "Ninguna",
		PoliticaContrasenas:   "Política básica",
		EliminacionDatos:      "Eliminación básica",
		RedesSociales:         "Presencia activa",
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestCreateAndGetByID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	recordID, err := store.Create(ctx, sampleAnswers(), 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if recordID == "" {
		t.Fatal("expected non-empty record id")
	}

	record, err := store.GetByID(ctx, recordID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if record.ID != recordID {
		t.Fatalf("ID = %q, want %q", record.ID, recordID)
	}
	if record.Score != 10 {
		t.Fatalf("Score = %d, want 10", record.Score)
	}
	if !reflect.DeepEqual(record.Answers, sampleAnswers()) {
		t.Fatalf("Answers = %+v, want round-tripped answers", record.Answers)
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}
}

func TestEveryCreateProducesANewRecord(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, sampleAnswers(), 10)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := store.Create(ctx, sampleAnswers(), 10)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first == second {
		t.Fatal("identical submissions must produce distinct records")
	}

	records, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestGetByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetByID(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want storage.ErrNotFound", err)
	}

	_, err = store.GetByID(context.Background(), "   ")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("blank id err = %v, want storage.ErrNotFound", err)
	}
}

func TestGetAllNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	var ids []string
	for i := 0; i < 3; i++ {
		recordID, err := store.Create(ctx, sampleAnswers(), 10*i)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, recordID)
	}

	records, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, record := range records {
		if want := ids[len(ids)-1-i]; record.ID != want {
			t.Fatalf("records[%d].ID = %q, want %q (newest first)", i, record.ID, want)
		}
	}
}

func TestGetByEmailFilters(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	target := sampleAnswers()
	other := sampleAnswers()
	other.Email = "otro@empresa.com"

	if _, err := store.Create(ctx, target, 10); err != nil {
		t.Fatalf("create target: %v", err)
	}
	if _, err := store.Create(ctx, other, 20); err != nil {
		t.Fatalf("create other: %v", err)
	}
	if _, err := store.Create(ctx, target, 30); err != nil {
		t.Fatalf("create target again: %v", err)
	}

	records, err := store.GetByEmail(ctx, "ceo@acme.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, record := range records {
		if record.Answers.Email != "ceo@acme.com" {
			t.Fatalf("unexpected email %q", record.Answers.Email)
		}
	}

	none, err := store.GetByEmail(ctx, "nadie@empresa.com")
	if err != nil {
		t.Fatalf("get by unknown email: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("got %d records for unknown email, want 0", len(none))
	}
}

func TestReadsTolerateMalformedRows(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.sqlDB.ExecContext(
		ctx,
		`INSERT INTO results (id, tecnologias, created_at) VALUES (?, ?, ?)`,
		"legacy-row",
		"not-json",
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
	)
	if err != nil {
		t.Fatalf("insert legacy row: %v", err)
	}

	record, err := store.GetByID(ctx, "legacy-row")
	if err != nil {
		t.Fatalf("get legacy row: %v", err)
	}
	if record.Answers.Empresa != "" || record.Score != 0 {
		t.Fatalf("expected zero defaults, got %+v", record)
	}
	if record.Answers.Tecnologias == nil || len(record.Answers.Tecnologias) != 0 {
		t.Fatalf("Tecnologias = %#v, want empty slice", record.Answers.Tecnologias)
	}
}

// sparseScanner fills only the id column, leaving every nullable column in
// its NULL state, like a row written before the current schema.
type sparseScanner struct{ id string }

func (s sparseScanner) Scan(dest ...any) error {
	if p, ok := dest[0].(*string); ok {
		*p = s.id
	}
	return nil
}

func TestScanRecordDefaultsNullColumns(t *testing.T) {
	record, err := scanRecord(sparseScanner{id: "old-row"})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if record.ID != "old-row" {
		t.Fatalf("ID = %q, want %q", record.ID, "old-row")
	}
	if record.Answers.Empresa != "" || record.Score != 0 {
		t.Fatalf("expected zero defaults, got %+v", record)
	}
	if record.Answers.Tecnologias == nil || len(record.Answers.Tecnologias) != 0 {
		t.Fatalf("Tecnologias = %#v, want empty slice", record.Answers.Tecnologias)
	}
	if !record.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt = %v, want zero time for a NULL column", record.CreatedAt)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	recordID, err := first.Create(context.Background(), sampleAnswers(), 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	record, err := second.GetByID(context.Background(), recordID)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if record.Score != 42 {
		t.Fatalf("Score = %d, want 42", record.Score)
	}
}

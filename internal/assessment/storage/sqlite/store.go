// Package sqlite provides the SQLite-backed assessment result store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/securelups/securelups.co/internal/assessment/form"
	"github.com/securelups/securelups.co/internal/assessment/storage"
	"github.com/securelups/securelups.co/internal/assessment/storage/sqlite/migrations"
	"github.com/securelups/securelups.co/internal/id"
	"github.com/securelups/securelups.co/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

const tracerName = "securelups.co/assessment/storage/sqlite"

// Store persists assessment results in SQLite.
type Store struct {
	sqlDB  *sql.DB
	tracer trace.Tracer
	now    func() time.Time
	newID  func() string
}

// Open opens a SQLite result store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{
		sqlDB:  sqlDB,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
		newID:  id.New,
	}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts a new immutable result record and returns its id.
func (s *Store) Create(ctx context.Context, answers form.AnswerSet, score int) (string, error) {
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "results.create")
	defer span.End()

	recordID := s.newID()
	createdAt := s.now().UTC()
	tecnologias, err := json.Marshal(answers.Tecnologias)
	if err != nil {
		return "", spanErr(span, fmt.Errorf("encode tecnologias: %w", err))
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO results (
			id, empresa, email, sector, tecnologias, mantenimiento_ti,
			herramientas_seguridad, formacion, politica_contrasenas,
			eliminacion_datos, redes_sociales, riesgo_total, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recordID,
		answers.Empresa,
		answers.Email,
		answers.Sector,
		string(tecnologias),
		answers.MantenimientoTI,
		answers.HerramientasSeguridad,
		answers.Formacion,
		answers.PoliticaContrasenas,
		answers.EliminacionDatos,
		answers.RedesSociales,
		score,
		createdAt.UnixMilli(),
	)
	if err != nil {
		return "", spanErr(span, fmt.Errorf("insert result: %w", err))
	}
	span.SetAttributes(attribute.String("result.id", recordID))
	return recordID, nil
}

// GetByID returns one record or storage.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, recordID string) (storage.Record, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Record{}, fmt.Errorf("storage is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "results.get_by_id")
	defer span.End()

	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return storage.Record{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		selectColumns+" FROM results WHERE id = ?",
		recordID,
	)
	record, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Record{}, storage.ErrNotFound
		}
		return storage.Record{}, spanErr(span, fmt.Errorf("get result: %w", err))
	}
	return record, nil
}

// GetByEmail returns records for a contact email, newest first.
func (s *Store) GetByEmail(ctx context.Context, email string) ([]storage.Record, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "results.get_by_email")
	defer span.End()

	rows, err := s.sqlDB.QueryContext(
		ctx,
		selectColumns+" FROM results WHERE email = ? ORDER BY created_at DESC, id DESC",
		strings.TrimSpace(email),
	)
	if err != nil {
		return nil, spanErr(span, fmt.Errorf("query results by email: %w", err))
	}
	defer rows.Close()
	return collectRecords(rows)
}

// GetAll returns every record, newest first. Unbounded by design.
func (s *Store) GetAll(ctx context.Context) ([]storage.Record, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "results.get_all")
	defer span.End()

	rows, err := s.sqlDB.QueryContext(
		ctx,
		selectColumns+" FROM results ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, spanErr(span, fmt.Errorf("query results: %w", err))
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, spanErr(span, err)
	}
	span.SetAttributes(attribute.Int("result.count", len(records)))
	return records, nil
}

const selectColumns = `SELECT id, empresa, email, sector, tecnologias, mantenimiento_ti,
	herramientas_seguridad, formacion, politica_contrasenas, eliminacion_datos,
	redes_sociales, riesgo_total, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one row, substituting defaults for NULL or malformed
// fields so a partially shaped stored document never fails a read.
func scanRecord(row rowScanner) (storage.Record, error) {
	var (
		record      storage.Record
		empresa     sql.NullString
		email       sql.NullString
		sector      sql.NullString
		tecnologias sql.NullString
		mantTI      sql.NullString
		herramSeg   sql.NullString
		formacion   sql.NullString
		politica    sql.NullString
		eliminacion sql.NullString
		redes       sql.NullString
		score       sql.NullInt64
		createdAt   sql.NullInt64
	)
	if err := row.Scan(
		&record.ID,
		&empresa,
		&email,
		&sector,
		&tecnologias,
		&mantTI,
		&herramSeg,
		&formacion,
		&politica,
		&eliminacion,
		&redes,
		&score,
		&createdAt,
	); err != nil {
		return storage.Record{}, err
	}

	record.Answers = form.AnswerSet{
		Empresa:               empresa.String,
		Email:                 email.String,
		Sector:                sector.String,
		Tecnologias:           decodeTecnologias(tecnologias),
		MantenimientoTI:       mantTI.String,
		HerramientasSeguridad: herramSeg.String,
		Formacion:             formacion.String,
		PoliticaContrasenas:   politica.String,
		EliminacionDatos:      eliminacion.String,
		RedesSociales:         redes.String,
	}
	record.Score = int(score.Int64)
	if createdAt.Valid {
		record.CreatedAt = time.UnixMilli(createdAt.Int64).UTC()
	}
	return record, nil
}

func decodeTecnologias(value sql.NullString) []string {
	if !value.Valid || strings.TrimSpace(value.String) == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(value.String), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func collectRecords(rows *sql.Rows) ([]storage.Record, error) {
	records := []storage.Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return records, nil
}

func spanErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

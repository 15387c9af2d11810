package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pmla-casebook/internal/debug"
	"github.com/pmla-casebook/internal/registry"
)

// Exporter writes a consolidated snapshot into Postgres for downstream
// querying. The tables are rebuilt on every export: the snapshot is the
// source of truth, the database a queryable copy.
type Exporter struct {
	db *sql.DB
}

// NewExporter creates an exporter over an open connection.
func NewExporter(db *sql.DB) *Exporter {
	return &Exporter{db: db}
}

// Export replaces the case_master and case_fact tables with the snapshot's
// contents.
func (e *Exporter) Export(localDebug bool, snap registry.Snapshot) error {
	defer debug.DebugTiming(localDebug, "postgres export")()

	if err := e.ensureSchema(); err != nil {
		return err
	}

	if _, err := e.db.Exec("TRUNCATE TABLE case_fact, case_master"); err != nil {
		return fmt.Errorf("failed to truncate export tables: %w", err)
	}

	caseStmt, err := e.db.Prepare(`
		INSERT INTO case_master (ecir_no, ecir_date, status, zonal_office, persons_involved)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare case insert: %w", err)
	}
	defer caseStmt.Close()

	factStmt, err := e.db.Prepare(`
		INSERT INTO case_fact (ecir_no, category, source_sheet, payload)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare fact insert: %w", err)
	}
	defer factStmt.Close()

	// Sorted keys keep repeated exports byte-for-byte comparable.
	keys := make([]string, 0, len(snap))
	for key := range snap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	caseCount := 0
	factCount := 0
	for _, key := range keys {
		c := snap[key]

		persons, err := json.Marshal(c.PersonsInvolved)
		if err != nil {
			return fmt.Errorf("failed to encode persons for %s: %w", key, err)
		}

		if _, err := caseStmt.Exec(c.ECIRNo, nullable(c.ECIRDate), c.Status, nullable(c.ZonalOffice), persons); err != nil {
			return fmt.Errorf("failed to insert case %s: %w", key, err)
		}
		caseCount++

		n, err := e.insertFacts(factStmt, c)
		if err != nil {
			return err
		}
		factCount += n
	}

	debug.DebugOutput(localDebug, "exported %d cases, %d facts", caseCount, factCount)
	return nil
}

func (e *Exporter) insertFacts(stmt *sql.Stmt, c registry.CaseJSON) (int, error) {
	count := 0
	insert := func(category, sheetName string, fact interface{}) error {
		payload, err := json.Marshal(fact)
		if err != nil {
			return fmt.Errorf("failed to encode %s fact for %s: %w", category, c.ECIRNo, err)
		}
		if _, err := stmt.Exec(c.ECIRNo, category, sheetName, payload); err != nil {
			return fmt.Errorf("failed to insert %s fact for %s: %w", category, c.ECIRNo, err)
		}
		count++
		return nil
	}

	for _, f := range c.Searches {
		if err := insert("search", f.Sheet, f); err != nil {
			return count, err
		}
	}
	for _, f := range c.Arrests {
		if err := insert("arrest", f.Sheet, f); err != nil {
			return count, err
		}
	}
	for _, f := range c.PAOs {
		if err := insert("attachment", f.Sheet, f); err != nil {
			return count, err
		}
	}
	for _, f := range c.PCs {
		if err := insert("prosecution", f.Sheet, f); err != nil {
			return count, err
		}
	}
	return count, nil
}

func (e *Exporter) ensureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS case_master (
			ecir_no          text PRIMARY KEY,
			ecir_date        timestamp NULL,
			status           text NOT NULL,
			zonal_office     text NULL,
			persons_involved jsonb NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS case_fact (
			fact_id      serial PRIMARY KEY,
			ecir_no      text NOT NULL REFERENCES case_master (ecir_no) DEFERRABLE INITIALLY DEFERRED,
			category     text NOT NULL,
			source_sheet text NOT NULL,
			payload      jsonb NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS case_fact_ecir_no_idx ON case_fact (ecir_no)`,
		`CREATE INDEX IF NOT EXISTS case_fact_category_idx ON case_fact (category)`,
	}

	for _, stmt := range statements {
		if _, err := e.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create export schema: %w", err)
		}
	}
	return nil
}

func nullable(s interface{}) interface{} {
	switch v := s.(type) {
	case *string:
		if v == nil {
			return nil
		}
		return *v
	case string:
		if v == "" {
			return nil
		}
		return v
	}
	return s
}

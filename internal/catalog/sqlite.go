package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"uikit/internal/descriptor"
)

// Store is the SQLite-backed catalog cache. It lets list/render commands run
// from the last synced catalog without re-reading the YAML tree.
type Store struct {
	db *sql.DB
}

// NewStore creates or opens the catalog database.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS types (
			type_name TEXT PRIMARY KEY,
			summary TEXT,
			base_chain JSON
		);`,
		`CREATE TABLE IF NOT EXISTS members (
			type_name TEXT,
			kind TEXT,
			ord INTEGER,
			name TEXT,
			category TEXT,
			declaring_type TEXT,
			member_type TEXT,
			summary TEXT,
			default_value TEXT,
			PRIMARY KEY (type_name, kind, ord)
		);`,
		`CREATE TABLE IF NOT EXISTS links (
			type_name TEXT,
			ord INTEGER,
			target TEXT,
			label TEXT,
			PRIMARY KEY (type_name, ord)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_members_type ON members(type_name);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveRegistry replaces the cached catalog with the registry's contents in
// one transaction.
func (s *Store) SaveRegistry(ctx context.Context, reg *descriptor.Registry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"types", "members", "links"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, name := range reg.Names() {
		d, _ := reg.Resolve(name)
		if err := saveType(ctx, tx, d); err != nil {
			return fmt.Errorf("failed to save type %s: %w", name, err)
		}
	}
	return tx.Commit()
}

func saveType(ctx context.Context, tx *sql.Tx, d *descriptor.TypeDescriptor) error {
	chain, err := json.Marshal(d.BaseChain)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO types (type_name, summary, base_chain)
		VALUES (?, ?, ?)
		ON CONFLICT(type_name) DO UPDATE SET
			summary=excluded.summary,
			base_chain=excluded.base_chain`,
		d.TypeName, d.Summary, string(chain)); err != nil {
		return err
	}

	for _, seq := range []struct {
		kind    descriptor.MemberKind
		members []descriptor.Member
	}{
		{descriptor.KindProperty, d.Properties},
		{descriptor.KindMethod, d.Methods},
		{descriptor.KindField, d.Fields},
		{descriptor.KindEvent, d.Events},
		{descriptor.KindGlobalSetting, d.GlobalSettings},
	} {
		for i, m := range seq.members {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO members (type_name, kind, ord, name, category, declaring_type, member_type, summary, default_value)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.TypeName, string(seq.kind), i, m.Name, m.Category, m.DeclaringType, m.Type, m.Summary, m.Default); err != nil {
				return err
			}
		}
	}

	for i, l := range d.Links {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO links (type_name, ord, target, label)
			VALUES (?, ?, ?, ?)`,
			d.TypeName, i, l.Target, l.Label); err != nil {
			return err
		}
	}
	return nil
}

// LoadRegistry rebuilds a registry from the cached catalog, including child
// links.
func (s *Store) LoadRegistry(ctx context.Context) (*descriptor.Registry, error) {
	reg := descriptor.NewRegistry()

	rows, err := s.db.QueryContext(ctx, `SELECT type_name, summary, base_chain FROM types`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d descriptor.TypeDescriptor
		var chain string
		if err := rows.Scan(&d.TypeName, &d.Summary, &chain); err != nil {
			return nil, err
		}
		if chain != "" {
			if err := json.Unmarshal([]byte(chain), &d.BaseChain); err != nil {
				return nil, fmt.Errorf("corrupt base chain for %s: %w", d.TypeName, err)
			}
		}
		reg.Add(&d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, name := range reg.Names() {
		d, _ := reg.Resolve(name)
		if err := s.loadMembers(ctx, d); err != nil {
			return nil, err
		}
		if err := s.loadLinks(ctx, d); err != nil {
			return nil, err
		}
	}

	reg.LinkChildren()
	return reg, nil
}

func (s *Store) loadMembers(ctx context.Context, d *descriptor.TypeDescriptor) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, name, category, declaring_type, member_type, summary, default_value
		FROM members WHERE type_name = ? ORDER BY kind, ord`, d.TypeName)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var m descriptor.Member
		if err := rows.Scan(&kind, &m.Name, &m.Category, &m.DeclaringType, &m.Type, &m.Summary, &m.Default); err != nil {
			return err
		}
		m.Kind = descriptor.MemberKind(kind)
		switch m.Kind {
		case descriptor.KindProperty:
			d.Properties = append(d.Properties, m)
		case descriptor.KindMethod:
			d.Methods = append(d.Methods, m)
		case descriptor.KindField:
			d.Fields = append(d.Fields, m)
		case descriptor.KindEvent:
			d.Events = append(d.Events, m)
		case descriptor.KindGlobalSetting:
			d.GlobalSettings = append(d.GlobalSettings, m)
		}
	}
	return rows.Err()
}

func (s *Store) loadLinks(ctx context.Context, d *descriptor.TypeDescriptor) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT target, label FROM links WHERE type_name = ? ORDER BY ord`, d.TypeName)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l descriptor.SeeAlsoLink
		if err := rows.Scan(&l.Target, &l.Label); err != nil {
			return err
		}
		d.Links = append(d.Links, l)
	}
	return rows.Err()
}

package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite es un KV durable sobre un archivo SQLite local: una fila por
// colección, el snapshot JSON completo en la columna data.
type SQLite struct {
	db *sqlx.DB
}

// OpenSQLite abre (o crea) el archivo de almacenamiento y asegura el esquema.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir almacén sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping almacén sqlite: %w", err)
	}
	schema := `
CREATE TABLE IF NOT EXISTS collections(
  name       TEXT PRIMARY KEY,
  data       TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("crear esquema del almacén: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get devuelve el snapshot de key, o (nil, nil) si la colección nunca se escribió.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.GetContext(ctx, &data, `SELECT data FROM collections WHERE name = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer colección %q: %w", key, err)
	}
	return data, nil
}

// Put reemplaza el snapshot completo de key.
func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections(name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("escribir colección %q: %w", key, err)
	}
	return nil
}

// Close cierra el archivo subyacente.
func (s *SQLite) Close() error {
	return s.db.Close()
}

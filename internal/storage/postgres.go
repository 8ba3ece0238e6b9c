package storage

import (
	"database/sql"
	"fmt"
)

// Postgres - реализация Store поверх одной таблицы app_state
type Postgres struct {
	db *sql.DB
}

// NewPostgres создаёт хранилище поверх открытого соединения
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// EnsureSchema создаёт таблицу состояния, если её ещё нет
func (s *Postgres) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS public.app_state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("создание таблицы app_state: %w", err)
	}
	return nil
}

// Get возвращает значение по ключу
func (s *Postgres) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM public.app_state WHERE key = $1", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set записывает значение по ключу (upsert)
func (s *Postgres) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO public.app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	return err
}

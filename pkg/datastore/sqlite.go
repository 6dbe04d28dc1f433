package datastore

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/dusklight/pixelpipe/pkg/errors"
	"github.com/dusklight/pixelpipe/pkg/logging"
	"github.com/dusklight/pixelpipe/pkg/types"
)

// SQLiteStore is the on-disk Store, one row per image.
type SQLiteStore struct {
	conn   *sql.DB
	logger zerolog.Logger
	path   string
}

// DefaultPath returns the database location under the XDG data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "pixelpipe", "library.db")
}

// OpenSQLite opens or creates the order database at path. An empty path
// selects DefaultPath.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreOpen, "failed to create database directory")
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreOpen, "failed to open order database")
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, errors.Wrap(err, errors.ErrStoreOpen, "failed to set pragma")
		}
	}

	store := &SQLiteStore{
		conn:   conn,
		logger: logging.GetLogger("datastore.sqlite"),
		path:   path,
	}
	if err := store.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	store.logger.Debug().Str("path", path).Msg("order database opened")
	return store, nil
}

func (s *SQLiteStore) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS module_order (
			imgid INTEGER PRIMARY KEY,
			version INTEGER NOT NULL,
			iop_list BLOB
		)`
	if _, err := s.conn.Exec(schema); err != nil {
		return errors.Wrap(err, errors.ErrStoreOpen, "failed to initialize schema")
	}
	return nil
}

// Read implements Store.
func (s *SQLiteStore) Read(imageID int64) (types.Version, []byte, error) {
	var version int
	var blob []byte
	err := s.conn.QueryRow(
		"SELECT version, iop_list FROM module_order WHERE imgid = ?", imageID,
	).Scan(&version, &blob)
	if err == sql.ErrNoRows {
		return 0, nil, errors.Newf(errors.ErrNotFound, "no stored order for image %d", imageID)
	}
	if err != nil {
		s.logger.Warn().Err(err).Int64("image", imageID).Msg("order read failed")
		return 0, nil, errors.Wrap(err, errors.ErrStoreRead, "failed to read order")
	}
	return types.Version(version), blob, nil
}

// Write implements Store.
func (s *SQLiteStore) Write(imageID int64, version types.Version, blob []byte) error {
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO module_order (imgid, version, iop_list) VALUES (?, ?, ?)",
		imageID, int(version), blob,
	)
	if err != nil {
		s.logger.Warn().Err(err).Int64("image", imageID).Msg("order write failed")
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to write order")
	}
	s.logger.Debug().
		Int64("image", imageID).
		Str("version", version.String()).
		Int("blobBytes", len(blob)).
		Msg("order written")
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(imageID int64) error {
	_, err := s.conn.Exec("DELETE FROM module_order WHERE imgid = ?", imageID)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to delete order")
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

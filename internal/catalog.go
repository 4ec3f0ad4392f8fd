package internal

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	url           TEXT NOT NULL DEFAULT '',
	created_time  TEXT NOT NULL DEFAULT '',
	message_count INTEGER NOT NULL,
	archived_at   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
	session_id TEXT NOT NULL,
	seq        INTEGER NOT NULL,
	sender     TEXT NOT NULL,
	content    TEXT NOT NULL,
	thinking   TEXT NOT NULL DEFAULT '',
	timestamp  TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (session_id, seq)
);
`

// Catalog is a local SQLite archive of parsed sessions, keyed by
// content hash so re-archiving a snapshot replaces its entry.
type Catalog struct {
	db *sql.DB
}

// CatalogEntry is one archived session as shown by listings.
type CatalogEntry struct {
	ID           string
	Title        string
	URL          string
	CreatedTime  string
	MessageCount int
	ArchivedAt   string
}

// OpenCatalog opens (creating if needed) the catalog database at path.
func OpenCatalog(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &CatalogError{Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &CatalogError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &CatalogError{Op: "open", Err: err}
	}
	if _, err := db.Exec(catalogSchema); err != nil {
		_ = db.Close()
		return nil, &CatalogError{Op: "open", Err: err}
	}

	return &Catalog{db: db}, nil
}

// Save archives a session and its messages, returning the catalog ID.
// The session itself is not modified.
func (c *Catalog) Save(session *ChatSession) (string, error) {
	id := session.ContentHash()

	tx, err := c.db.Begin()
	if err != nil {
		return "", &CatalogError{Op: "save", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT OR REPLACE INTO sessions (id, title, url, created_time, message_count, archived_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, session.Title, session.URL, session.CreatedTime,
		len(session.Messages), time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return "", &CatalogError{Op: "save", Err: err}
	}

	if _, err := tx.Exec(`DELETE FROM messages WHERE session_id = ?`, id); err != nil {
		return "", &CatalogError{Op: "save", Err: err}
	}

	for seq, msg := range session.Messages {
		_, err := tx.Exec(
			`INSERT INTO messages (session_id, seq, sender, content, thinking, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, seq, string(msg.Sender), msg.Content, msg.Thinking, msg.Timestamp,
		)
		if err != nil {
			return "", &CatalogError{Op: "save", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", &CatalogError{Op: "save", Err: err}
	}
	return id, nil
}

// List returns all archived sessions, most recently archived first.
func (c *Catalog) List() ([]CatalogEntry, error) {
	rows, err := c.db.Query(
		`SELECT id, title, url, created_time, message_count, archived_at
		 FROM sessions ORDER BY archived_at DESC, id`)
	if err != nil {
		return nil, &CatalogError{Op: "list", Err: err}
	}
	defer rows.Close()

	var entries []CatalogEntry
	for rows.Next() {
		var entry CatalogEntry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.URL, &entry.CreatedTime,
			&entry.MessageCount, &entry.ArchivedAt); err != nil {
			return nil, &CatalogError{Op: "list", Err: err}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, &CatalogError{Op: "list", Err: err}
	}

	return entries, nil
}

// Load returns one archived session by catalog ID.
func (c *Catalog) Load(id string) (*ChatSession, error) {
	var session ChatSession
	err := c.db.QueryRow(
		`SELECT title, url, created_time FROM sessions WHERE id = ?`, id).
		Scan(&session.Title, &session.URL, &session.CreatedTime)
	if err != nil {
		return nil, &CatalogError{Op: "load", Err: err}
	}

	rows, err := c.db.Query(
		`SELECT sender, content, thinking, timestamp FROM messages
		 WHERE session_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, &CatalogError{Op: "load", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var msg ChatMessage
		var sender string
		if err := rows.Scan(&sender, &msg.Content, &msg.Thinking, &msg.Timestamp); err != nil {
			return nil, &CatalogError{Op: "load", Err: err}
		}
		msg.Sender = Sender(sender)
		session.Messages = append(session.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, &CatalogError{Op: "load", Err: err}
	}

	return &session, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

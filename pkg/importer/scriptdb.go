package importer

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schema mirrors the tifosi tables the script populates.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS marque (
		id_marque  INTEGER PRIMARY KEY AUTOINCREMENT,
		nom        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS boisson (
		id_boisson INTEGER PRIMARY KEY AUTOINCREMENT,
		nom        TEXT NOT NULL,
		id_marque  INTEGER NOT NULL REFERENCES marque(id_marque)
	)`,
	`CREATE TABLE IF NOT EXISTS ingredient (
		id_ingredient INTEGER PRIMARY KEY AUTOINCREMENT,
		nom           TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS focaccia (
		id_focaccia INTEGER PRIMARY KEY AUTOINCREMENT,
		nom         TEXT NOT NULL,
		prix        REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comprend (
		id_focaccia   INTEGER NOT NULL REFERENCES focaccia(id_focaccia),
		id_ingredient INTEGER NOT NULL REFERENCES ingredient(id_ingredient),
		quantite      INTEGER NOT NULL
	)`,
}

// Tables lists the populated tables in load order.
var Tables = []string{"marque", "boisson", "ingredient", "focaccia", "comprend"}

// ScriptDB is a Sink that executes the script against a SQLite copy of the
// schema, so a script can be checked before it reaches the real server.
type ScriptDB struct {
	db       *sql.DB
	database string
	section  string
}

// OpenScriptDB opens (or creates) the SQLite database at path and ensures
// the schema exists. An empty path opens a private in-memory database.
func OpenScriptDB(path string) (*ScriptDB, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open script db: %w", err)
	}
	// Every pooled connection to :memory: would see its own database.
	db.SetMaxOpenConns(1)

	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &ScriptDB{db: db}, nil
}

// Close ferme la connexion SQLite.
func (s *ScriptDB) Close() error {
	return s.db.Close()
}

// Use records the target database; SQLite has a single schema.
func (s *ScriptDB) Use(database string) error {
	s.database = database
	return nil
}

func (s *ScriptDB) Section(title string) error {
	s.section = title
	return nil
}

func (s *ScriptDB) Exec(stmt string) error {
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("%s: %s: %w", s.section, stmt, err)
	}
	return nil
}

// Database returns the name received by Use.
func (s *ScriptDB) Database() string {
	return s.database
}

// Counts returns the number of rows of each table.
func (s *ScriptDB) Counts() (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, t := range Tables {
		var n int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + t).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", t, err)
		}
		counts[t] = n
	}
	return counts, nil
}

// Composition is one comprend row joined back to names.
type Composition struct {
	Focaccia   string
	Ingredient string
	Quantite   int
}

// Compositions returns the comprend rows of a focaccia in insertion order.
func (s *ScriptDB) Compositions(focaccia string) ([]Composition, error) {
	rows, err := s.db.Query(`SELECT f.nom, i.nom, c.quantite
		FROM comprend c
		JOIN focaccia f ON f.id_focaccia = c.id_focaccia
		JOIN ingredient i ON i.id_ingredient = c.id_ingredient
		WHERE f.nom = ?
		ORDER BY c.rowid`, focaccia)
	if err != nil {
		return nil, fmt.Errorf("list compositions: %w", err)
	}
	defer rows.Close()

	var out []Composition
	for rows.Next() {
		var c Composition
		if err := rows.Scan(&c.Focaccia, &c.Ingredient, &c.Quantite); err != nil {
			return nil, fmt.Errorf("scan composition: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

package spritegen

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is the local SQLite database of rendered characters. Sheet
// images are deduplicated by SHA1 and looked up by the CRC of the source
// artifact, so a rescan does not rerender an unchanged artifact.
type Catalog struct {
	db *sql.DB
}

func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sheet (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, png BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS character (id INTEGER PRIMARY KEY NOT NULL, name STRING NOT NULL UNIQUE, description STRING, model STRING, sheet_id INTEGER, FOREIGN KEY(sheet_id) REFERENCES sheet(id))"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS checksum (character_id INTEGER NOT NULL, crc TEXT NOT NULL UNIQUE, FOREIGN KEY(character_id) REFERENCES character(id))"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) addSheet(png []byte) (int64, error) {
	sha := fmt.Sprintf("%X", sha1.Sum(png))

	var id int64
	switch err := c.db.QueryRow("SELECT id FROM sheet WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := c.db.Exec("INSERT INTO sheet (sha1, png) VALUES (?, ?)", sha, png)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

func (c *Catalog) addCharacter(name string, description, model sql.NullString, sheet sql.NullInt64) (int64, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM character WHERE name = ?", name).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := c.db.Exec("INSERT INTO character (name, description, model, sheet_id) VALUES (?, ?, ?, ?)", name, description, model, sheet)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		if _, err := c.db.Exec("UPDATE character SET description = ?, model = ?, sheet_id = ? WHERE id = ?", description, model, sheet, id); err != nil {
			return 0, err
		}
		return id, nil
	default:
		return 0, err
	}
}

// AddCharacter records a rendered character sheet under the CRC of its
// source artifact.
func (c *Catalog) AddCharacter(name, description, model, crc string, png []byte) error {
	var sheet sql.NullInt64
	if png != nil {
		id, err := c.addSheet(png)
		if err != nil {
			return err
		}
		sheet.Int64, sheet.Valid = id, true
	}

	var desc sql.NullString
	if description != "" {
		desc.String, desc.Valid = description, true
	}

	var mdl sql.NullString
	if model != "" {
		mdl.String, mdl.Valid = model, true
	}

	character, err := c.addCharacter(name, desc, mdl, sheet)
	if err != nil {
		return err
	}

	if _, err := c.db.Exec("INSERT OR REPLACE INTO checksum (character_id, crc) VALUES (?, ?)", character, crc); err != nil {
		return err
	}

	return nil
}

// FindSheetByCRC returns the rendered sheet for an artifact checksum, or
// nil if the artifact has not been seen before.
func (c *Catalog) FindSheetByCRC(crc string) ([]byte, error) {
	var png []byte
	switch err := c.db.QueryRow("SELECT s.png FROM checksum AS c JOIN character AS g ON c.character_id = g.id LEFT JOIN sheet AS s ON g.sheet_id = s.id WHERE c.crc = ?", crc).Scan(&png); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return png, nil
	default:
		return nil, err
	}
}

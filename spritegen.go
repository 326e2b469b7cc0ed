/*
Package spritegen renders language-model generated ASCII art characters
into pixel sprite sheets.
*/
package spritegen

import "log"

type SpriteGen struct {
	db     *Catalog
	logger *log.Logger
}

func New(file string, logger *log.Logger) (*SpriteGen, error) {
	db, err := NewCatalog(file)
	if err != nil {
		return nil, err
	}
	return &SpriteGen{
		db:     db,
		logger: logger,
	}, nil
}

func (s *SpriteGen) Close() error {
	return s.db.Close()
}

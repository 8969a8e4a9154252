// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package suite

import (
	"io/fs"
	"log"
	"path"
	"strings"
)

// CATALOG_EXT is the file extension of catalogs found by ParseFS.
const CATALOG_EXT = ".tests"

// ParseFS parses every catalog file in a file system, in lexical path order,
// and merges them into a single suite. Each file starts with only the
// predefined equates.
func (ld *Loader) ParseFS(filesys fs.FS) (s *Suite, err error) {
	s = New()
	err = fs.WalkDir(filesys, ".", func(name string, d fs.DirEntry, err_in error) (err error) {
		if err_in != nil {
			return err_in
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(name), CATALOG_EXT) {
			return
		}

		if ld.Verbose {
			log.Printf("suite: catalog %v", name)
		}

		inf, err := filesys.Open(name)
		if err != nil {
			return
		}
		defer inf.Close()

		loaded, err := ld.Parse(inf)
		if err == nil {
			s, err = s.Merge(loaded)
		}
		if err != nil {
			err = &ErrNamed{Name: name, Err: err}
		}
		return
	})
	return
}

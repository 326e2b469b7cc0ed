package spritegen

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spritegen/spritegen/artifact"
	"github.com/spritegen/spritegen/frame"
	"github.com/spritegen/spritegen/sprite"
)

func (s *SpriteGen) findArtifacts(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			// An animation artifact is a few KB; anything over 1 MB is something else
			if info.Size() > 1<<20 {
				return nil
			}

			if filepath.Ext(file) != ".json" {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (s *SpriteGen) artifactWorker(ctx context.Context, in <-chan string, scale int) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			out := strings.TrimSuffix(file, filepath.Ext(file)) + ".png"

			// Already rendered? Write the stored sheet back out.
			png, err := s.db.FindSheetByCRC(crc)
			if err != nil {
				errc <- err
				return
			}
			if png != nil {
				if err := ioutil.WriteFile(out, png, 0644); err != nil {
					errc <- err
					return
				}
				continue
			}

			a, err := artifact.Load(file, frame.Height, frame.Width)
			if err != nil {
				s.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			m, err := sprite.RasterizeSheet(a.Frames, a.Palette, sprite.CharacterLayout, scale)
			if err != nil {
				errc <- err
				return
			}

			b := new(bytes.Buffer)
			if err := sprite.Encode(b, m); err != nil {
				errc <- err
				return
			}

			if err := ioutil.WriteFile(out, b.Bytes(), 0644); err != nil {
				errc <- err
				return
			}

			name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			if err := s.db.AddCharacter(name, "", "", crc, b.Bytes()); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the tree under path rendering a sprite sheet next to every
// animation artifact it finds. Artifacts already present in the catalog
// are written from the stored sheet instead of being rerendered.
func (s *SpriteGen) Scan(path string, scale int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := s.findArtifacts(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errc, err := s.artifactWorker(ctx, files, scale)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}

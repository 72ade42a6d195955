package generator

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/font"

	"suah.dev/mpicons/catalog"
	"suah.dev/mpicons/icon"
)

// ErrDrift is returned by Verify when files on disk differ from a fresh render.
var ErrDrift = errors.New("icons out of date")

// Generator writes rendered icons into Dir.
type Generator struct {
	Dir    string
	Size   int
	Face   font.Face
	Logger zerolog.Logger
}

// Result describes one written file.
type Result struct {
	Path   string
	Kind   catalog.Kind
	Bytes  int
	Digest string
}

// Drift describes a file whose on-disk content does not match a fresh render.
type Drift struct {
	Path   string
	Reason string
}

func (g *Generator) render(j catalog.Job) ([]byte, error) {
	var res fyne.Resource = icon.Render(j.File, g.Size, j.Color, j.Label, g.Face)
	data := res.Content()
	if len(data) == 0 {
		return nil, fmt.Errorf("encode %s: no image data", res.Name())
	}
	return data, nil
}

func digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Run creates Dir if needed and writes every job to it, overwriting existing
// files. It stops at the first failure and leaves earlier files in place.
func (g *Generator) Run(jobs []catalog.Job) ([]Result, error) {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", g.Dir, err)
	}

	results := make([]Result, 0, len(jobs))
	for _, j := range jobs {
		data, err := g.render(j)
		if err != nil {
			return results, err
		}

		path := filepath.Join(g.Dir, j.File)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return results, fmt.Errorf("write %s: %w", path, err)
		}

		r := Result{Path: path, Kind: j.Kind, Bytes: len(data), Digest: digest(data)}
		g.Logger.Info().
			Str("kind", string(r.Kind)).
			Str("path", r.Path).
			Int("bytes", r.Bytes).
			Str("blake2b", r.Digest[:16]).
			Msg("created")
		results = append(results, r)
	}
	return results, nil
}

// Verify renders every job in memory and compares it with the file in Dir.
// Nothing is written. A non-empty drift list is returned with ErrDrift.
func (g *Generator) Verify(jobs []catalog.Job) ([]Drift, error) {
	var drift []Drift
	for _, j := range jobs {
		want, err := g.render(j)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(g.Dir, j.File)
		got, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			drift = append(drift, Drift{Path: path, Reason: "missing"})
			continue
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if digest(got) != digest(want) {
			drift = append(drift, Drift{Path: path, Reason: "changed"})
			continue
		}
		g.Logger.Debug().Str("path", path).Msg("up to date")
	}

	if len(drift) > 0 {
		return drift, fmt.Errorf("%w: %d of %d files", ErrDrift, len(drift), len(jobs))
	}
	return nil, nil
}

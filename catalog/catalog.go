package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

//go:embed icons.json
var defaultCatalog []byte

var (
	ErrInvalid   = errors.New("invalid catalog")
	ErrDuplicate = errors.New("duplicate output file")
)

const (
	activeSuffix = "-active"
	ext          = ".png"

	// MaxSize bounds the raster edge a catalog may ask for.
	MaxSize = 1024
)

// Kind tells tab-bar icons (two states) from page icons (one state).
type Kind string

const (
	KindTabBar Kind = "tabbar"
	KindPage   Kind = "page"
)

// Entry is one icon definition as written in a catalog file.
type Entry struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	// Color is a palette name ("gray", "green") or a hex value. Page icons only.
	Color string `json:"color"`
}

// Catalog is the full set of icons to produce along with the palette and
// raster size they share.
type Catalog struct {
	Size   int     `json:"size"`
	Gray   string  `json:"gray"`
	Green  string  `json:"green"`
	TabBar []Entry `json:"tabbar"`
	Pages  []Entry `json:"pages"`
}

// Job is a single output file.
type Job struct {
	File  string
	Label string
	Color color.RGBA
	Kind  Kind
}

// FileName returns the output file name for an icon in the given state.
func FileName(name string, active bool) string {
	if active {
		return name + activeSuffix + ext
	}
	return name + ext
}

// Plan expands the catalog into output jobs: an inactive and an active job
// per tab-bar entry followed by one job per page entry.
func (c Catalog) Plan() ([]Job, error) {
	if c.Size <= 0 || c.Size > MaxSize {
		return nil, fmt.Errorf("%w: size %d not in 1..%d", ErrInvalid, c.Size, MaxSize)
	}
	gray, err := ParseColor(c.Gray)
	if err != nil {
		return nil, fmt.Errorf("%w: gray: %v", ErrInvalid, err)
	}
	green, err := ParseColor(c.Green)
	if err != nil {
		return nil, fmt.Errorf("%w: green: %v", ErrInvalid, err)
	}

	jobs := make([]Job, 0, 2*len(c.TabBar)+len(c.Pages))
	for _, e := range c.TabBar {
		if err := checkName(e.Name); err != nil {
			return nil, err
		}
		jobs = append(jobs,
			Job{File: FileName(e.Name, false), Label: e.Label, Color: gray, Kind: KindTabBar},
			Job{File: FileName(e.Name, true), Label: e.Label, Color: green, Kind: KindTabBar},
		)
	}
	for _, e := range c.Pages {
		if err := checkName(e.Name); err != nil {
			return nil, err
		}
		var co color.RGBA
		switch e.Color {
		case "gray":
			co = gray
		case "green":
			co = green
		default:
			co, err = ParseColor(e.Color)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, e.Name, err)
			}
		}
		jobs = append(jobs, Job{File: FileName(e.Name, false), Label: e.Label, Color: co, Kind: KindPage})
	}

	seen := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		if seen[j.File] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, j.File)
		}
		seen[j.File] = true
	}
	return jobs, nil
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty icon name", ErrInvalid)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: icon name %q is not a plain file name", ErrInvalid, name)
	}
	return nil
}

// ParseColor parses a "#rrggbb" or "#rgb" value into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Parse decodes a JSON catalog. It does not validate it; see Plan.
func Parse(data []byte) (Catalog, error) {
	c := Catalog{}
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return c, nil
}

// Default returns the built-in mini-program catalog.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog from p, or returns the built-in one when p is empty.
func Load(p string) (Catalog, error) {
	if p == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return Catalog{}, err
	}
	return Parse(data)
}

package doctor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"suah.dev/mpicons/icon"
)

const guidance = `mpicons cannot render images in this build.
Rebuild it with golang.org/x/image available:
  go mod download golang.org/x/image
  go install suah.dev/mpicons@latest`

// Check tests one imaging capability.
type Check struct {
	Name string
	Run  func() error
}

// Checks returns the imaging checks that must pass before any file is
// touched.
func Checks() []Check {
	return []Check{
		{Name: "png encoder", Run: checkPNG},
		{Name: "built-in font", Run: checkFont},
	}
}

// Run executes checks in order and returns an exit code (0=all pass, 1=any
// fail). Failures and installation guidance are written to w.
func Run(w io.Writer, checks []Check) int {
	failed := false
	for i, c := range checks {
		if err := c.Run(); err != nil {
			fmt.Fprintf(w, "[%d/%d] %s\n  FAIL: %v\n", i+1, len(checks), c.Name, err)
			failed = true
		}
	}
	if !failed {
		return 0
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, guidance)
	return 1
}

func checkPNG() error {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	got, err := png.Decode(buf)
	if err != nil {
		return err
	}
	if got.Bounds() != img.Bounds() {
		return fmt.Errorf("decoded bounds %v, want %v", got.Bounds(), img.Bounds())
	}
	return nil
}

func checkFont() error {
	face, err := icon.LoadFace(icon.Builtin, icon.DefaultFontSize)
	if err != nil {
		return err
	}
	return face.Close()
}

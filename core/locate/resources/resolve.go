package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/typewriter/core"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, "%s", s)
}

// packaged fonts, by normalized name
var packaged = map[string][]byte{
	"go":        goregular.TTF,
	"go-bold":   gobold.TTF,
	"go-italic": goitalic.TTF,
	"go-mono":   gomono.TTF,
}

// NormalizeFontname lower-cases a font name, strips a font file extension and
// replaces blanks and underscores with dashes: "Go Mono.ttf" → "go-mono".
func NormalizeFontname(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch filepath.Ext(name) {
	case ".ttf", ".otf", ".ttc":
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.NewReplacer(" ", "-", "_", "-").Replace(name)
}

// --- Fonts -----------------------------------------------------------------

// Font is the binary content of a font file.
type Font struct {
	Name string // as requested
	Path string // file system path, empty for packaged fonts
	Data []byte
}

// FontPromise delivers a font resolved in the background.
type FontPromise interface {
	Font() (Font, error)
	Await(ctx context.Context) (Font, error)
}

type fontPlusErr struct {
	font Font
	err  error
}

// fontLoader hands out the result of a resolve, as often as asked. result
// is written once, before done is closed.
type fontLoader struct {
	name   string
	done   <-chan struct{}
	result *fontPlusErr
}

func (loader fontLoader) Font() (Font, error) {
	return loader.Await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (Font, error) {
	select {
	case <-ctx.Done():
		return Font{Name: loader.name}, ctx.Err()
	case <-loader.done:
		return loader.result.font, loader.result.err
	}
}

// ResolveFont resolves a font by name. Fonts packaged with this module
// ("Go", "Go-Bold", "Go-Italic", "Go-Mono") are found first; other names are
// searched for as system fonts.
func ResolveFont(name string) FontPromise {
	done := make(chan struct{})
	result := &fontPlusErr{font: Font{Name: name}}
	go func() {
		defer close(done)
		if data, ok := packaged[NormalizeFontname(name)]; ok {
			tracer().Debugf("found font %s as packaged font", name)
			result.font.Data = data
			return
		}
		fname := name
		if filepath.Ext(fname) == "" {
			fname += ".ttf"
		}
		fpath, err := findfont.Find(fname) // try to find as system font
		if err != nil || fpath == "" {
			tracer().Infof("font %s is neither packaged nor a system font", name)
			result.err = NotFound(name, fontResourceType)
			return
		}
		tracer().Debugf("%s is a system font: %s", name, fpath)
		result.font.Path = fpath
		if result.font.Data, err = os.ReadFile(fpath); err != nil {
			result.err = core.WrapError(err, core.EMISSING, "cannot read font file %s", fpath)
		}
	}()
	return fontLoader{name: name, done: done, result: result}
}

package resources

import (
	"context"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typewriter/core"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNormalizeFontname(t *testing.T) {
	assert.Equal(t, "go-mono", NormalizeFontname("Go Mono.ttf"))
	assert.Equal(t, "go-bold", NormalizeFontname(" go_Bold "))
	assert.Equal(t, "dejavusans.woff", NormalizeFontname("DejaVuSans.woff"))
}

func TestLoadPackagedFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.resources")
	defer teardown()
	//
	f, err := ResolveFont("Go").Font()
	assert.NoError(t, err)
	assert.Equal(t, goregular.TTF, f.Data)
	assert.Equal(t, "Go", f.Name)
	assert.Empty(t, f.Path)
	f, err = ResolveFont("Go-Mono.ttf").Font()
	assert.NoError(t, err)
	assert.Equal(t, gomono.TTF, f.Data)
}

func TestMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.resources")
	defer teardown()
	//
	_, err := ResolveFont("no-such-font-for-typewriter-tests").Font()
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestFontPromiseDeliversRepeatedly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.resources")
	defer teardown()
	//
	p := ResolveFont("Go")
	first, err := p.Font()
	assert.NoError(t, err)
	second, err := p.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, goregular.TTF, second.Data)
	//
	p = ResolveFont("no-such-font-for-typewriter-tests")
	_, err = p.Font()
	assert.Error(t, err)
	_, err = p.Font()
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestMissingFontNameKeepsPercent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.resources")
	defer teardown()
	//
	err := NotFound("50%dFont", fontResourceType)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "font not found: 50%dFont", core.UserMessage(err))
}

package seqfx

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrEmptyFontData is returned when a font is acquired with no data and
// no cached entry under that name.
var ErrEmptyFontData = errors.New("seqfx: empty font data")

// FontHandle is a reference-counted handle to a parsed font. Text strips
// hold one; copies of a strip retain it again, and Free releases it.
// When the last handle goes, the parsed font leaves the cache.
type FontHandle struct {
	name string
	font *opentype.Font
}

type cachedFont struct {
	font *opentype.Font
	refs int
}

var (
	fontMu    sync.Mutex
	fontCache = map[string]*cachedFont{}
)

// AcquireFont returns a handle to the font registered under name,
// parsing data on first acquisition. Later acquisitions of the same name
// reuse the cached parse and may pass nil data.
func AcquireFont(name string, data []byte) (*FontHandle, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if e, ok := fontCache[name]; ok {
		e.refs++
		return &FontHandle{name: name, font: e.font}, nil
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seqfx: parse font %q: %w", name, err)
	}
	fontCache[name] = &cachedFont{font: f, refs: 1}
	return &FontHandle{name: name, font: f}, nil
}

// retain adds a reference for a payload copy.
func (h *FontHandle) retain() *FontHandle {
	if h == nil {
		return nil
	}
	fontMu.Lock()
	if e, ok := fontCache[h.name]; ok {
		e.refs++
	}
	fontMu.Unlock()
	return &FontHandle{name: h.name, font: h.font}
}

// Release drops one reference. The handle must not be used afterwards.
func (h *FontHandle) Release() {
	if h == nil {
		return
	}
	fontMu.Lock()
	if e, ok := fontCache[h.name]; ok {
		e.refs--
		if e.refs <= 0 {
			delete(fontCache, h.name)
		}
	}
	fontMu.Unlock()
}

// Name returns the name the font was registered under.
func (h *FontHandle) Name() string { return h.name }

// builtinFont lazily parses the bundled fallback font, used whenever a
// text strip names no font of its own.
var (
	builtinOnce sync.Once
	builtin     *opentype.Font
)

func builtinFont() *opentype.Font {
	builtinOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// goregular is a known-good embedded font.
			panic("seqfx: builtin font: " + err.Error())
		}
		builtin = f
	})
	return builtin
}

// fontRefCount reports the live reference count for a cached font name.
// Test hook.
func fontRefCount(name string) int {
	fontMu.Lock()
	defer fontMu.Unlock()
	if e, ok := fontCache[name]; ok {
		return e.refs
	}
	return 0
}

package styles

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

// Pool is the shared registry of formatting primitives of one workbook. Fonts,
// fills and borders are addressed by their position in the stylesheet lists,
// number formats by numFmtId. Entries are only ever appended.
//
// A Pool is not safe for concurrent use. Readers may share it while no writer
// is active.
type Pool struct {
	ss    *sml.CT_Stylesheet
	dedup bool

	fontIdx   map[string]uint32
	fillIdx   map[string]uint32
	borderIdx map[string]uint32
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithoutDedup makes every insert append a fresh entry.
func WithoutDedup() PoolOption {
	return func(p *Pool) { p.dedup = false }
}

// NewPool wraps the font, fill, border and number format lists of ss. Missing
// lists are created so that inserts always have somewhere to go.
func NewPool(ss *sml.CT_Stylesheet, opts ...PoolOption) *Pool {
	if ss == nil {
		ss = sml.NewCT_Stylesheet()
	}
	if ss.Fonts == nil {
		ss.Fonts = sml.NewCT_Fonts()
	}
	if ss.Fills == nil {
		ss.Fills = sml.NewCT_Fills()
	}
	if ss.Borders == nil {
		ss.Borders = sml.NewCT_Borders()
	}
	p := &Pool{ss: ss, dedup: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stylesheet returns the underlying stylesheet.
func (p *Pool) Stylesheet() *sml.CT_Stylesheet { return p.ss }

// Font returns the shared font definition with the given id. Repeated calls
// return the same pointer.
func (p *Pool) Font(id uint32) (*sml.CT_Font, error) {
	return lookup(KindFont, p.ss.Fonts.Font, id)
}

// Fill returns the shared fill definition with the given id.
func (p *Pool) Fill(id uint32) (*sml.CT_Fill, error) {
	return lookup(KindFill, p.ss.Fills.Fill, id)
}

// Border returns the shared border definition with the given id.
func (p *Pool) Border(id uint32) (*sml.CT_Border, error) {
	return lookup(KindBorder, p.ss.Borders.Border, id)
}

// InsertFont returns the id of a font equal to f, appending a copy of f if
// there is none. The caller keeps ownership of f.
func (p *Pool) InsertFont(f *sml.CT_Font) (uint32, error) {
	return insert(p, KindFont, &p.ss.Fonts.Font, &p.ss.Fonts.CountAttr, &p.fontIdx, f, copyFont)
}

// InsertFill returns the id of a fill equal to f, appending a copy of f if
// there is none.
func (p *Pool) InsertFill(f *sml.CT_Fill) (uint32, error) {
	return insert(p, KindFill, &p.ss.Fills.Fill, &p.ss.Fills.CountAttr, &p.fillIdx, f, copyFill)
}

// InsertBorder returns the id of a border equal to b, appending a copy of b if
// there is none.
func (p *Pool) InsertBorder(b *sml.CT_Border) (uint32, error) {
	return insert(p, KindBorder, &p.ss.Borders.Border, &p.ss.Borders.CountAttr, &p.borderIdx, b, copyBorder)
}

// CloneFont appends a copy of font id and returns the id of the copy.
func (p *Pool) CloneFont(id uint32) (uint32, error) {
	f, err := p.Font(id)
	if err != nil {
		return 0, err
	}
	return appendEntry(&p.ss.Fonts.Font, &p.ss.Fonts.CountAttr, copyFont(f)), nil
}

// CloneFill appends a copy of fill id and returns the id of the copy. The copy
// can be edited without affecting cells that still reference id.
func (p *Pool) CloneFill(id uint32) (uint32, error) {
	f, err := p.Fill(id)
	if err != nil {
		return 0, err
	}
	return appendEntry(&p.ss.Fills.Fill, &p.ss.Fills.CountAttr, copyFill(f)), nil
}

// CloneBorder appends a copy of border id and returns the id of the copy.
func (p *Pool) CloneBorder(id uint32) (uint32, error) {
	b, err := p.Border(id)
	if err != nil {
		return 0, err
	}
	return appendEntry(&p.ss.Borders.Border, &p.ss.Borders.CountAttr, copyBorder(b)), nil
}

// Len reports how many ids of the given kind resolve.
func (p *Pool) Len(kind Kind) int {
	switch kind {
	case KindFont:
		return len(p.ss.Fonts.Font)
	case KindFill:
		return len(p.ss.Fills.Fill)
	case KindBorder:
		return len(p.ss.Borders.Border)
	case KindNumberFormat:
		n := len(builtinFormats)
		for _, nf := range p.customFormats() {
			if _, ok := builtinFormats[nf.NumFmtIdAttr]; !ok {
				n++
			}
		}
		return n
	}
	return 0
}

// Has reports whether id addresses an entry of the given kind.
func (p *Pool) Has(kind Kind, id uint32) bool {
	var err error
	switch kind {
	case KindFont:
		_, err = p.Font(id)
	case KindFill:
		_, err = p.Fill(id)
	case KindBorder:
		_, err = p.Border(id)
	case KindNumberFormat:
		_, err = p.NumberFormat(id)
	default:
		return false
	}
	return err == nil
}

func lookup[T any](kind Kind, list []*T, id uint32) (*T, error) {
	if uint64(id) >= uint64(len(list)) || list[id] == nil {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
	}
	return list[id], nil
}

func insert[T any](p *Pool, kind Kind, list *[]*T, count **uint32, index *map[string]uint32, def *T, dup func(*T) *T) (uint32, error) {
	if def == nil {
		return 0, fmt.Errorf("%w: nil %s definition", ErrInvalidValue, kind)
	}
	if !p.dedup {
		return appendEntry(list, count, dup(def)), nil
	}
	key, ok := canonical(def)
	if !ok {
		return appendEntry(list, count, dup(def)), nil
	}
	if *index == nil {
		*index = buildIndex(*list)
	}
	if id, hit := (*index)[key]; hit {
		// Entries can be edited in place after they were indexed.
		if cur, ok := canonical((*list)[id]); ok && cur == key {
			return id, nil
		}
		*index = buildIndex(*list)
		if id, hit := (*index)[key]; hit {
			return id, nil
		}
	}
	id := appendEntry(list, count, dup(def))
	(*index)[key] = id
	return id, nil
}

func appendEntry[T any](list *[]*T, count **uint32, def *T) uint32 {
	*list = append(*list, def)
	*count = unioffice.Uint32(uint32(len(*list)))
	return uint32(len(*list) - 1)
}

func buildIndex[T any](list []*T) map[string]uint32 {
	idx := make(map[string]uint32, len(list))
	for i, def := range list {
		if def == nil {
			continue
		}
		key, ok := canonical(def)
		if !ok {
			continue
		}
		if _, seen := idx[key]; !seen {
			idx[key] = uint32(i)
		}
	}
	return idx
}

// canonical encodes a definition as XML. Two definitions with the same
// encoding are treated as equal.
func canonical(v any) (string, bool) {
	var b strings.Builder
	enc := xml.NewEncoder(&b)
	if err := enc.Encode(v); err != nil {
		return "", false
	}
	return b.String(), true
}

package styles

import (
	"fmt"

	"github.com/unidoc/unioffice/schema/soo/sml"
)

// IndexedColorAutomatic is the legacy palette index reported for colors that
// are not set.
const IndexedColorAutomatic = 64

// MaxIndexedColor is the last legacy palette index (system background).
const MaxIndexedColor = 65

// CellStyle is the formatting of one cell: a Record resolved against a Pool.
//
// Fonts, fills and borders live in the pool and may be referenced by many
// cells. Border and fill setters edit the shared definition in place, so the
// change shows on every cell resolving to the same id; call IsolateBorder or
// IsolateFill first for a change local to this record. SetFont never edits a
// font in place.
//
// The same Record may back several cells. Editing through one view edits it
// for all of them.
type CellStyle struct {
	rec     *Record
	pool    *Pool
	formats NumberFormats

	font   cached[sml.CT_Font]
	fill   cached[sml.CT_Fill]
	border cached[sml.CT_Border]
}

// Option configures a CellStyle.
type Option func(*CellStyle)

// WithNumberFormats resolves number format codes through nf instead of the
// pool.
func WithNumberFormats(nf NumberFormats) Option {
	return func(cs *CellStyle) { cs.formats = nf }
}

// NewCellStyle binds rec to pool.
func NewCellStyle(rec *Record, pool *Pool, opts ...Option) *CellStyle {
	cs := &CellStyle{rec: rec, pool: pool, formats: pool}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

func (cs *CellStyle) Record() *Record { return cs.rec }

func (cs *CellStyle) Pool() *Pool { return cs.pool }

// cached remembers a pool entry together with the id it was looked up by, and
// looks it up again once the record points somewhere else.
type cached[T any] struct {
	id uint32
	v  *T
}

func (c *cached[T]) get(id uint32, load func(uint32) (*T, error)) (*T, error) {
	if c.v != nil && c.id == id {
		return c.v, nil
	}
	v, err := load(id)
	if err != nil {
		return nil, err
	}
	c.id, c.v = id, v
	return v, nil
}

func (cs *CellStyle) FontID() (uint32, error) { return cs.rec.FontID() }

// Font returns the shared font definition of the cell. Treat it as read only;
// use SetFont to change the font of this record.
func (cs *CellStyle) Font() (*sml.CT_Font, error) {
	id, err := cs.rec.FontID()
	if err != nil {
		return nil, err
	}
	return cs.font.get(id, cs.pool.Font)
}

// SetFont points the record at a pool font equal to f, adding a copy of f to
// the pool when no such font exists yet. It returns the font id now in use.
func (cs *CellStyle) SetFont(f *sml.CT_Font) (uint32, error) {
	id, err := cs.pool.InsertFont(f)
	if err != nil {
		return 0, err
	}
	cs.rec.SetFontID(id)
	return id, nil
}

// SetFontID points the record at an existing pool font.
func (cs *CellStyle) SetFontID(id uint32) error {
	if _, err := cs.pool.Font(id); err != nil {
		return err
	}
	cs.rec.SetFontID(id)
	return nil
}

func (cs *CellStyle) NumberFormatID() (uint32, error) { return cs.rec.NumberFormatID() }

// NumberFormat returns the format code of the cell's number format.
func (cs *CellStyle) NumberFormat() (string, error) {
	id, err := cs.rec.NumberFormatID()
	if err != nil {
		return "", err
	}
	return cs.formats.NumberFormat(id)
}

// SetNumberFormatID points the record at a known number format.
func (cs *CellStyle) SetNumberFormatID(id uint32) error {
	if _, err := cs.formats.NumberFormat(id); err != nil {
		return err
	}
	cs.rec.SetNumberFormatID(id)
	return nil
}

// SetNumberFormat points the record at the format with the given code,
// registering the code in the pool if needed.
func (cs *CellStyle) SetNumberFormat(code string) (uint32, error) {
	id, err := cs.pool.InsertNumberFormat(code)
	if err != nil {
		return 0, err
	}
	cs.rec.SetNumberFormatID(id)
	return id, nil
}

// CheckIndexedColor reports ErrInvalidValue for indexes past the legacy
// palette.
func CheckIndexedColor(idx uint32) error {
	if idx > MaxIndexedColor {
		return fmt.Errorf("%w: indexed color %d", ErrInvalidValue, idx)
	}
	return nil
}

func indexedColor(c *sml.CT_Color) uint32 {
	if c == nil || c.IndexedAttr == nil {
		return IndexedColorAutomatic
	}
	return *c.IndexedAttr
}

func newIndexedColor(idx uint32) *sml.CT_Color {
	c := sml.NewCT_Color()
	c.IndexedAttr = &idx
	return c
}

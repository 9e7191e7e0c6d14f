package styles

import (
	"fmt"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
)

// Record pairs a cell format (the direct tier, an entry of cellXfs) with the
// named cell style it is based on (the fallback tier, an entry of
// cellStyleXfs). Ids resolve direct first, then fallback. Writes only ever
// touch the direct tier, since the fallback is shared by every cell using the
// named style.
type Record struct {
	direct   *sml.CT_Xf
	fallback *sml.CT_Xf
}

// NewRecord returns a record over direct and fallback. A nil direct xf is
// replaced by an empty one; fallback may be nil.
func NewRecord(direct, fallback *sml.CT_Xf) *Record {
	if direct == nil {
		direct = sml.NewCT_Xf()
	}
	return &Record{direct: direct, fallback: fallback}
}

// Direct returns the direct tier.
func (r *Record) Direct() *sml.CT_Xf { return r.direct }

// Fallback returns the fallback tier, or nil.
func (r *Record) Fallback() *sml.CT_Xf { return r.fallback }

// HasFallback reports whether the record is based on a named style.
func (r *Record) HasFallback() bool { return r.fallback != nil }

func (r *Record) FontID() (uint32, error) {
	return r.resolve(KindFont, func(xf *sml.CT_Xf) *uint32 { return xf.FontIdAttr })
}

func (r *Record) FillID() (uint32, error) {
	return r.resolve(KindFill, func(xf *sml.CT_Xf) *uint32 { return xf.FillIdAttr })
}

func (r *Record) BorderID() (uint32, error) {
	return r.resolve(KindBorder, func(xf *sml.CT_Xf) *uint32 { return xf.BorderIdAttr })
}

func (r *Record) NumberFormatID() (uint32, error) {
	return r.resolve(KindNumberFormat, func(xf *sml.CT_Xf) *uint32 { return xf.NumFmtIdAttr })
}

func (r *Record) resolve(kind Kind, field func(*sml.CT_Xf) *uint32) (uint32, error) {
	if v := field(r.direct); v != nil {
		return *v, nil
	}
	if r.fallback != nil {
		if v := field(r.fallback); v != nil {
			return *v, nil
		}
	}
	return 0, fmt.Errorf("%w: %s id", ErrUnresolved, kind)
}

// SetFontID points the direct tier at font id.
func (r *Record) SetFontID(id uint32) {
	r.direct.FontIdAttr = unioffice.Uint32(id)
	r.direct.ApplyFontAttr = unioffice.Bool(true)
}

func (r *Record) SetFillID(id uint32) {
	r.direct.FillIdAttr = unioffice.Uint32(id)
	r.direct.ApplyFillAttr = unioffice.Bool(true)
}

func (r *Record) SetBorderID(id uint32) {
	r.direct.BorderIdAttr = unioffice.Uint32(id)
	r.direct.ApplyBorderAttr = unioffice.Bool(true)
}

func (r *Record) SetNumberFormatID(id uint32) {
	r.direct.NumFmtIdAttr = unioffice.Uint32(id)
	r.direct.ApplyNumberFormatAttr = unioffice.Bool(true)
}

// Alignment returns the alignment of the direct tier, attaching an empty one
// first if there is none.
func (r *Record) Alignment() *sml.CT_CellAlignment {
	if r.direct.Alignment == nil {
		r.direct.Alignment = sml.NewCT_CellAlignment()
	}
	return r.direct.Alignment
}

// Protection returns the protection of the direct tier, attaching an empty
// one first if there is none.
func (r *Record) Protection() *sml.CT_CellProtection {
	if r.direct.Protection == nil {
		r.direct.Protection = sml.NewCT_CellProtection()
	}
	return r.direct.Protection
}

// QuotePrefix reports whether the cell value is shown as text, as if typed
// with a leading apostrophe.
func (r *Record) QuotePrefix() bool {
	return r.direct.QuotePrefixAttr != nil && *r.direct.QuotePrefixAttr
}

func (r *Record) SetQuotePrefix(v bool) {
	r.direct.QuotePrefixAttr = unioffice.Bool(v)
}

func (r *Record) markAlignment() {
	r.direct.ApplyAlignmentAttr = unioffice.Bool(true)
}

func (r *Record) markProtection() {
	r.direct.ApplyProtectionAttr = unioffice.Bool(true)
}

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aerissecure/xlstyle/styles"
	"gopkg.in/yaml.v3"
)

// Patch describes changes to one cell's formatting. Unset fields are left
// alone.
type Patch struct {
	// Detach gives the cell its own cell format before anything is changed.
	Detach       bool             `yaml:"detach"`
	Font         *FontPatch       `yaml:"font"`
	Fill         *FillPatch       `yaml:"fill"`
	Border       *BorderPatch     `yaml:"border"`
	Alignment    *AlignmentPatch  `yaml:"alignment"`
	Protection   *ProtectionPatch `yaml:"protection"`
	NumberFormat string           `yaml:"numberFormat"`
	QuotePrefix  *bool            `yaml:"quotePrefix"`
}

type FontPatch struct {
	Name       string  `yaml:"name"`
	Size       float64 `yaml:"size"`
	Bold       *bool   `yaml:"bold"`
	Italic     *bool   `yaml:"italic"`
	Color      string  `yaml:"color"`
	ColorIndex *uint32 `yaml:"colorIndex"`
}

// FillPatch edits the cell's fill. Without Isolate the edit reaches every
// cell sharing the fill.
type FillPatch struct {
	Isolate    bool    `yaml:"isolate"`
	Pattern    string  `yaml:"pattern"`
	Foreground *uint32 `yaml:"foreground"`
	Background *uint32 `yaml:"background"`
}

// BorderPatch edits the cell's border. Without Isolate the edit reaches every
// cell sharing the border.
type BorderPatch struct {
	Isolate bool                 `yaml:"isolate"`
	Sides   map[string]SidePatch `yaml:"sides"`
}

type SidePatch struct {
	Style string  `yaml:"style"`
	Color *uint32 `yaml:"color"`
}

type AlignmentPatch struct {
	Horizontal  string `yaml:"horizontal"`
	Vertical    string `yaml:"vertical"`
	Wrap        *bool  `yaml:"wrap"`
	ShrinkToFit *bool  `yaml:"shrinkToFit"`
	Indent      *int   `yaml:"indent"`
	Rotation    *int   `yaml:"rotation"`
}

type ProtectionPatch struct {
	Locked *bool `yaml:"locked"`
	Hidden *bool `yaml:"hidden"`
}

// LoadPatch reads a YAML patch. Unknown keys are rejected.
func LoadPatch(path string) (*Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodePatch(f)
}

func decodePatch(r io.Reader) (*Patch, error) {
	var p Patch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	return &p, nil
}

func parsePatch(data []byte) (*Patch, error) {
	return decodePatch(bytes.NewReader(data))
}

type edit func(*styles.CellStyle) error

// compile checks every value in the patch and returns the edits to run, so
// that a bad value is reported before the cell is touched.
func (p *Patch) compile() ([]edit, error) {
	var edits []edit
	add := func(e edit) { edits = append(edits, e) }

	if f := p.Font; f != nil {
		var opts []styles.FontOption
		if f.Name != "" {
			opts = append(opts, styles.WithFontName(f.Name))
		}
		if f.Size < 0 {
			return nil, fmt.Errorf("%w: font size %v", styles.ErrInvalidValue, f.Size)
		}
		if f.Size > 0 {
			opts = append(opts, styles.WithFontSize(f.Size))
		}
		if f.Bold != nil {
			opts = append(opts, styles.WithBold(*f.Bold))
		}
		if f.Italic != nil {
			opts = append(opts, styles.WithItalic(*f.Italic))
		}
		if f.Color != "" {
			argb, err := styles.ParseRGB(f.Color)
			if err != nil {
				return nil, err
			}
			opts = append(opts, styles.WithFontColorRGB(argb))
		}
		if f.ColorIndex != nil {
			if err := styles.CheckIndexedColor(*f.ColorIndex); err != nil {
				return nil, err
			}
			opts = append(opts, styles.WithFontColorIndex(*f.ColorIndex))
		}
		add(func(cs *styles.CellStyle) error {
			base, err := cs.Font()
			if err != nil {
				return err
			}
			_, err = cs.SetFont(styles.DeriveFont(base, opts...))
			return err
		})
	}

	if f := p.Fill; f != nil {
		if f.Isolate {
			add(func(cs *styles.CellStyle) error {
				_, err := cs.IsolateFill()
				return err
			})
		}
		if f.Pattern != "" {
			pt, err := styles.ParsePatternType(f.Pattern)
			if err != nil {
				return nil, err
			}
			add(func(cs *styles.CellStyle) error { return cs.SetFillPattern(pt) })
		}
		if f.Foreground != nil {
			idx := *f.Foreground
			if err := styles.CheckIndexedColor(idx); err != nil {
				return nil, err
			}
			add(func(cs *styles.CellStyle) error { return cs.SetFillForegroundColorIndex(idx) })
		}
		if f.Background != nil {
			idx := *f.Background
			if err := styles.CheckIndexedColor(idx); err != nil {
				return nil, err
			}
			add(func(cs *styles.CellStyle) error { return cs.SetFillBackgroundColorIndex(idx) })
		}
	}

	if b := p.Border; b != nil {
		if b.Isolate {
			add(func(cs *styles.CellStyle) error {
				_, err := cs.IsolateBorder()
				return err
			})
		}
		for name, sp := range b.Sides {
			side, err := styles.ParseSide(name)
			if err != nil {
				return nil, err
			}
			if sp.Style != "" {
				bs, err := styles.ParseBorderStyle(sp.Style)
				if err != nil {
					return nil, err
				}
				add(func(cs *styles.CellStyle) error { return cs.SetBorderStyle(side, bs) })
			}
			if sp.Color != nil {
				idx := *sp.Color
				if err := styles.CheckIndexedColor(idx); err != nil {
					return nil, err
				}
				add(func(cs *styles.CellStyle) error { return cs.SetBorderColorIndex(side, idx) })
			}
		}
	}

	if a := p.Alignment; a != nil {
		if a.Horizontal != "" {
			h, err := styles.ParseHorizontalAlignment(a.Horizontal)
			if err != nil {
				return nil, err
			}
			add(func(cs *styles.CellStyle) error { return cs.SetHorizontalAlignment(h) })
		}
		if a.Vertical != "" {
			v, err := styles.ParseVerticalAlignment(a.Vertical)
			if err != nil {
				return nil, err
			}
			add(func(cs *styles.CellStyle) error { return cs.SetVerticalAlignment(v) })
		}
		if a.Wrap != nil {
			v := *a.Wrap
			add(func(cs *styles.CellStyle) error { cs.SetWrapText(v); return nil })
		}
		if a.ShrinkToFit != nil {
			v := *a.ShrinkToFit
			add(func(cs *styles.CellStyle) error { cs.SetShrinkToFit(v); return nil })
		}
		if a.Indent != nil {
			n := *a.Indent
			if err := styles.CheckIndent(n); err != nil {
				return nil, err
			}
			add(func(cs *styles.CellStyle) error { return cs.SetIndent(n) })
		}
		if a.Rotation != nil {
			n := *a.Rotation
			if err := styles.CheckRotation(n); err != nil {
				return nil, err
			}
			add(func(cs *styles.CellStyle) error { return cs.SetRotation(n) })
		}
	}

	if pr := p.Protection; pr != nil {
		if pr.Locked != nil {
			v := *pr.Locked
			add(func(cs *styles.CellStyle) error { cs.SetLocked(v); return nil })
		}
		if pr.Hidden != nil {
			v := *pr.Hidden
			add(func(cs *styles.CellStyle) error { cs.SetHidden(v); return nil })
		}
	}

	if p.NumberFormat != "" {
		code := p.NumberFormat
		add(func(cs *styles.CellStyle) error {
			_, err := cs.SetNumberFormat(code)
			return err
		})
	}
	if p.QuotePrefix != nil {
		v := *p.QuotePrefix
		add(func(cs *styles.CellStyle) error { cs.Record().SetQuotePrefix(v); return nil })
	}
	return edits, nil
}

// Apply validates the patch and then applies it to cs.
func (p *Patch) Apply(cs *styles.CellStyle) error {
	edits, err := p.compile()
	if err != nil {
		return err
	}
	for _, e := range edits {
		if err := e(cs); err != nil {
			return err
		}
	}
	return nil
}

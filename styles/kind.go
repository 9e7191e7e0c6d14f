package styles

// Kind names one of the shared attribute tables in a Pool.
type Kind int

const (
	KindFont Kind = iota
	KindFill
	KindBorder
	KindNumberFormat
)

func (k Kind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindFill:
		return "fill"
	case KindBorder:
		return "border"
	case KindNumberFormat:
		return "numFmt"
	}
	return "unknown"
}

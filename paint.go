package canvas

// FillRule is the algorithm to specify which area is to be filled and which not,
// in particular when multiple subpaths overlap. The NonZero rule is the default
// and will fill any point that is being enclosed by an unequal number of paths
// winding clockwise and counter clockwise, otherwise it will not be filled. The
// EvenOdd rule will fill any point that is being enclosed by an uneven number
// of paths, whichever their direction.
type FillRule int

// see FillRule
const (
	NonZero FillRule = iota
	EvenOdd
)

func (fillRule FillRule) String() string {
	if fillRule == NonZero {
		return "NonZero"
	}
	return "EvenOdd"
}

// BlendMode is the Porter-Duff compositing operator used when drawing onto an
// existing surface.
type BlendMode int

// see BlendMode
const (
	BlendSrcOver BlendMode = iota
	BlendSrc
	BlendDstIn
	BlendDstOut
)

func (mode BlendMode) String() string {
	switch mode {
	case BlendSrc:
		return "Src"
	case BlendDstIn:
		return "DstIn"
	case BlendDstOut:
		return "DstOut"
	}
	return "SrcOver"
}

// LineCap is the style of line endings of a stroke.
type LineCap int

// see LineCap
const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

func (lineCap LineCap) String() string {
	switch lineCap {
	case RoundCap:
		return "Round"
	case SquareCap:
		return "Square"
	}
	return "Butt"
}

// LineJoin is the style of line joins of a stroke.
type LineJoin int

// see LineJoin
const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

func (lineJoin LineJoin) String() string {
	switch lineJoin {
	case RoundJoin:
		return "Round"
	case BevelJoin:
		return "Bevel"
	}
	return "Miter"
}

// SpreadMethod is the gradient behavior outside the [0,1] offset range.
type SpreadMethod int

// see SpreadMethod
const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

func (spread SpreadMethod) String() string {
	switch spread {
	case SpreadReflect:
		return "Reflect"
	case SpreadRepeat:
		return "Repeat"
	}
	return "Pad"
}

// TextureType specifies whether a texture paints its source surface once or
// tiles it endlessly in both directions.
type TextureType int

// see TextureType
const (
	TexturePlain TextureType = iota
	TextureTiled
)

func (textureType TextureType) String() string {
	if textureType == TextureTiled {
		return "Tiled"
	}
	return "Plain"
}

////////////////////////////////////////////////////////////////

// DashData is a stroke dash pattern as lengths of alternating dashes and gaps,
// with the offset into the pattern at which the stroke begins. An empty Array
// means a solid stroke.
type DashData struct {
	Offset float64
	Array  []float64
}

// StrokeStyle are the path stroking parameters of a stroke operation. The
// parameters are passed through to the rasterizer unvalidated, a zero or
// negative width draws nothing.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       DashData
}

package models

// ============================================================
// DXF Entities
// ============================================================

type EntityKind string

const (
	KindLine       EntityKind = "LINE"
	KindLWPolyline EntityKind = "LWPOLYLINE"
	KindPolyline   EntityKind = "POLYLINE"
	KindSpline     EntityKind = "SPLINE"
	KindCircle     EntityKind = "CIRCLE"
	KindEllipse    EntityKind = "ELLIPSE"
	KindArc        EntityKind = "ARC"
	KindHatch      EntityKind = "HATCH"
)

// DefaultKinds is the entity selection used when no type filter is given.
func DefaultKinds() []string {
	return []string{
		string(KindLine), string(KindLWPolyline), string(KindPolyline),
		string(KindSpline), string(KindCircle), string(KindEllipse),
		string(KindArc), string(KindHatch),
	}
}

// By-layer sentinels: these values mean "inherit from the owning layer"
// and are omitted from feature properties.
const (
	ColorByLayer      = 256
	LineweightByLayer = -1
	LinetypeByLayer   = "BYLAYER"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Attrs holds the style attributes shared by every entity kind.
type Attrs struct {
	Layer      string
	Color      int
	Lineweight int
	Linetype   string
}

// Attributes makes Attrs satisfy that part of the Entity interface
// for every type embedding it.
func (a Attrs) Attributes() Attrs { return a }

// DefaultAttrs returns Attrs with all style fields at their by-layer
// sentinels and the layer set to the DXF default layer "0".
func DefaultAttrs() Attrs {
	return Attrs{
		Layer:      "0",
		Color:      ColorByLayer,
		Lineweight: LineweightByLayer,
		Linetype:   LinetypeByLayer,
	}
}

// Entity is the closed set of drawing primitives the exporter understands.
type Entity interface {
	Kind() EntityKind
	Attributes() Attrs
}

type Line struct {
	Attrs
	Start Point
	End   Point
}

func (Line) Kind() EntityKind { return KindLine }

type LWPolyline struct {
	Attrs
	Vertices []Point
	Closed   bool
}

func (LWPolyline) Kind() EntityKind { return KindLWPolyline }

type Polyline struct {
	Attrs
	Vertices []Point
	Closed   bool
}

func (Polyline) Kind() EntityKind { return KindPolyline }

type Spline struct {
	Attrs
	Degree        int
	Knots         []float64
	ControlPoints []Point
	FitPoints     []Point
}

func (Spline) Kind() EntityKind { return KindSpline }

type Circle struct {
	Attrs
	Center Point
	Radius float64
}

func (Circle) Kind() EntityKind { return KindCircle }

type Ellipse struct {
	Attrs
	Center    Point
	MajorAxis Point // vector from the center to the major-axis endpoint
	Ratio     float64
}

func (Ellipse) Kind() EntityKind { return KindEllipse }

type Arc struct {
	Attrs
	Center     Point
	Radius     float64
	StartAngle float64 // degrees
	EndAngle   float64 // degrees
}

func (Arc) Kind() EntityKind { return KindArc }

type Hatch struct {
	Attrs
	Paths [][]Point // boundary loops in source order
}

func (Hatch) Kind() EntityKind { return KindHatch }

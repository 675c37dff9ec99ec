package internal

type Point struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []*Point
}

// A triangle read back out of a triangulated mesh. The points are the mesh's
// own vertex points, so they can be compared by pointer against the input.
type Triangle struct {
	A, B, C *Point
}

type VertexID int
type HalfEdgeID int
type FaceID int

// Sentinels for unset links. Every link in a finished mesh is set, except the
// outer component of the exterior face.
const (
	NoVertex   VertexID   = -1
	NoHalfEdge HalfEdgeID = -1
	NoFace     FaceID     = -1
)

// The exterior face always has id 0. It is never triangulated, graphed or
// colored.
const OuterFace FaceID = 0

// Which monotone chain a vertex sits on while its face is being triangulated.
type Chain int8

const (
	LeftChain Chain = iota
	RightChain
	// The top and bottom vertices of a monotone face belong to both chains
	ChainEnd
)

// Guard colors. A vertex starts out uncolored, and is colored exactly once.
type Color int8

const (
	NoColor Color = iota - 1
	Red
	Green
	Blue
)

// Palette order used when picking the first free color
var Palette = [3]Color{Red, Green, Blue}

type VertexStack []VertexID

type VertexSet map[VertexID]struct{}

type FaceSet map[FaceID]struct{}

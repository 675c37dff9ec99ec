package internal

import "sort"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *VertexStack) Push(v VertexID) {
	*s = append(*s, v)
}

func (s *VertexStack) Pop() VertexID {
	if len(*s) == 0 {
		return NoVertex
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *VertexStack) Peek() VertexID {
	if len(*s) == 0 {
		return NoVertex
	}
	return (*s)[len(*s)-1]
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}

func (set VertexSet) Add(v VertexID) {
	set[v] = struct{}{}
}

func (set VertexSet) Contains(v VertexID) bool {
	_, ok := set[v]
	return ok
}

func (set FaceSet) Add(f FaceID) {
	set[f] = struct{}{}
}

func (set FaceSet) Contains(f FaceID) bool {
	_, ok := set[f]
	return ok
}

// Sorted returns the faces in ascending id order, so that traversals over a
// set are reproducible.
func (set FaceSet) Sorted() []FaceID {
	faces := make([]FaceID, 0, len(set))
	for f := range set {
		faces = append(faces, f)
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i] < faces[j] })
	return faces
}

func (c Chain) String() string {
	switch c {
	case LeftChain:
		return "left"
	case RightChain:
		return "right"
	case ChainEnd:
		return "end"
	}
	return "?"
}

func (c Color) String() string {
	switch c {
	case NoColor:
		return "none"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "?"
}

package internal

import "github.com/pkg/errors"

// Threading errors up and down every mesh walk and sweep handler would add a
// ton of noise to the geometry code. Instead, contract violations panic with an
// error, and the public entry points recover to convert it back into one.

var (
	// Fewer than three points, or a boundary that does not wind
	// counterclockwise.
	ErrInvalidInput = errors.New("invalid polygon")
	// A diagonal was requested between vertices that share no face.
	ErrUndefinedDiagonal = errors.New("undefined diagonal")
	// The geometry contradicts what the sweep or the coloring relies on. This
	// only happens for input that isn't a simple polygon.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

type GalleryError error

// Panic with a GalleryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with one of the sentinel errors, annotated.
func fatalWrap(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if galleryError, ok := r.(GalleryError); ok {
			return galleryError
		}
		panic(r)
	}
	return nil
}

package delaunay

import (
	"errors"
	"fmt"
)

// ErrDegenerate indicates output triangles whose circumcircle is undefined.
var ErrDegenerate = errors.New("delaunay: degenerate geometry (collinear or coincident vertices)")

// DegenerateError lists the output triangles that triggered ErrDegenerate.
type DegenerateError struct {
	Triangles []Triangle
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: %d triangle(s), first %v", ErrDegenerate, len(e.Triangles), e.Triangles[0])
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerate
}

package haunch

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/dlawry/bridgegeom/pkg/geom"
)

// TriangleMesh converts quad faces to a triangle soup. Each quad is
// fanned into two triangles from its first vertex; split top faces are
// already quads, so the shared ridge edge survives triangulation.
func TriangleMesh(faces []geom.Face) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, 2*len(faces))
	for _, f := range faces {
		tris = append(tris,
			&sdf.Triangle3{f.V[0], f.V[1], f.V[2]},
			&sdf.Triangle3{f.V[0], f.V[2], f.V[3]},
		)
	}
	return tris
}

// SaveSTL writes the triangulated faces to a binary STL file.
func SaveSTL(path string, faces []geom.Face) error {
	return render.SaveSTL(path, TriangleMesh(faces))
}

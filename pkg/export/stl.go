// Package export serializes tessellated tag meshes to printable file
// formats: binary STL for single-material output and 3MF for the
// two-material split.
package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dwongdev/qrcode2stl/pkg/kernel"
)

// stlHeader defines the binary STL file header.
type stlHeader struct {
	_     [80]uint8 // header, unused
	Count uint32    // number of triangles
}

// stlTriangle is the 50-byte on-disk triangle record.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count, unused
}

// WriteSTL writes a mesh to a writer in binary STL format.
func WriteSTL(w io.Writer, m *kernel.Mesh) error {
	if m == nil || m.IsEmpty() {
		return errors.New("export: empty mesh")
	}
	header := stlHeader{Count: uint32(m.TriangleCount())}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	vertex := func(idx uint32) [3]float32 {
		return [3]float32{m.Vertices[idx*3], m.Vertices[idx*3+1], m.Vertices[idx*3+2]}
	}
	for t := 0; t < m.TriangleCount(); t++ {
		i0, i1, i2 := m.Indices[t*3], m.Indices[t*3+1], m.Indices[t*3+2]
		rec := stlTriangle{
			Normal:  [3]float32{m.Normals[i0*3], m.Normals[i0*3+1], m.Normals[i0*3+2]},
			Vertex1: vertex(i0),
			Vertex2: vertex(i1),
			Vertex3: vertex(i2),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return nil
}

// CreateSTL writes a mesh to a binary STL file.
func CreateSTL(path string, m *kernel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := WriteSTL(bw, m); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

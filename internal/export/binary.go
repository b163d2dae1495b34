// Package export writes baked scene meshes to disk.
package export

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Faultbox/deskscene/pkg/mesh"
)

// .dmsh header values. The magic reads "DMSH" in file order.
const (
	binaryMagic   uint32 = 0x48534D44
	binaryVersion uint32 = 1

	// Header counts above these are rejected as corrupt. Below them the
	// decoder still grows its buffers only as payload actually arrives.
	maxBinaryVertices = 1 << 20
	maxBinaryIndices  = 2 * maxBinaryVertices

	// readChunk is how many vertices or indices are decoded per read.
	readChunk = 4096
)

// Binary decoding errors.
var (
	ErrBadMagic           = errors.New("not a dmsh file")
	ErrUnsupportedVersion = errors.New("unsupported dmsh version")
	ErrTruncated          = errors.New("truncated dmsh data")
	ErrCorrupt            = errors.New("corrupt dmsh data")
)

type binaryHeader struct {
	Magic       uint32
	Version     uint32
	Mode        uint32
	VertexCount uint32
}

// EncodeBinary serializes a mesh as gzip-compressed little-endian data:
// header, interleaved vertex floats, index count and uint16 indices.
func EncodeBinary(m *mesh.Mesh) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteBinary streams the EncodeBinary form of m to w.
func WriteBinary(w io.Writer, m *mesh.Mesh) error {
	gz := gzip.NewWriter(w)

	hdr := binaryHeader{
		Magic:       binaryMagic,
		Version:     binaryVersion,
		Mode:        uint32(m.Mode),
		VertexCount: uint32(len(m.Vertices)),
	}
	if err := binary.Write(gz, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if err := binary.Write(gz, binary.LittleEndian, m.Interleave()); err != nil {
		return err
	}
	if err := binary.Write(gz, binary.LittleEndian, uint32(len(m.Indices))); err != nil {
		return err
	}
	if len(m.Indices) > 0 {
		if err := binary.Write(gz, binary.LittleEndian, m.Indices); err != nil {
			return err
		}
	}

	return gz.Close()
}

// DecodeBinary parses data produced by EncodeBinary.
func DecodeBinary(data []byte) (*mesh.Mesh, error) {
	return ReadBinary(bytes.NewReader(data))
}

// ReadBinary parses a mesh from r.
func ReadBinary(r io.Reader) (*mesh.Mesh, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	defer gz.Close()

	var hdr binaryHeader
	if err := read(gz, &hdr); err != nil {
		return nil, err
	}
	if hdr.Magic != binaryMagic {
		return nil, fmt.Errorf("%w: magic %#x", ErrBadMagic, hdr.Magic)
	}
	if hdr.Version != binaryVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	mode := mesh.Primitive(hdr.Mode)
	if mode != mesh.Triangles && mode != mesh.TriangleStrip {
		return nil, fmt.Errorf("%w: primitive %d", ErrCorrupt, hdr.Mode)
	}
	if hdr.VertexCount > maxBinaryVertices {
		return nil, fmt.Errorf("%w: %d vertices", ErrCorrupt, hdr.VertexCount)
	}

	verts, err := readVertices(gz, int(hdr.VertexCount))
	if err != nil {
		return nil, err
	}

	var indexCount uint32
	if err := read(gz, &indexCount); err != nil {
		return nil, err
	}
	if indexCount > maxBinaryIndices {
		return nil, fmt.Errorf("%w: %d indices", ErrCorrupt, indexCount)
	}

	m := &mesh.Mesh{Vertices: verts, Mode: mode}
	if indexCount > 0 {
		if m.Indices, err = readIndices(gz, int(indexCount), len(verts)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// readVertices decodes n interleaved vertices, readChunk at a time, so a
// header that overstates n fails with ErrTruncated before memory is spent.
func readVertices(r io.Reader, n int) ([]mesh.Vertex, error) {
	verts := make([]mesh.Vertex, 0, min(n, readChunk))
	buf := make([]float32, min(n, readChunk)*mesh.FloatsPerVertex)
	for len(verts) < n {
		k := min(n-len(verts), readChunk)
		floats := buf[:k*mesh.FloatsPerVertex]
		if err := read(r, floats); err != nil {
			return nil, err
		}
		for i := 0; i < k; i++ {
			f := floats[i*mesh.FloatsPerVertex:]
			verts = append(verts, mesh.Vertex{
				Position: [3]float32{f[0], f[1], f[2]},
				Normal:   [3]float32{f[3], f[4], f[5]},
				TexCoord: [2]float32{f[6], f[7]},
			})
		}
	}
	return verts, nil
}

// readIndices decodes n indices the same way and checks each against the
// vertex count.
func readIndices(r io.Reader, n, vertexCount int) ([]uint16, error) {
	indices := make([]uint16, 0, min(n, readChunk))
	buf := make([]uint16, min(n, readChunk))
	for len(indices) < n {
		chunk := buf[:min(n-len(indices), readChunk)]
		if err := read(r, chunk); err != nil {
			return nil, err
		}
		for _, idx := range chunk {
			if int(idx) >= vertexCount {
				return nil, fmt.Errorf("%w: index %d out of range", ErrCorrupt, idx)
			}
		}
		indices = append(indices, chunk...)
	}
	return indices, nil
}

func read(r io.Reader, v any) error {
	err := binary.Read(r, binary.LittleEndian, v)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

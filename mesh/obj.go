package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ reads vertex positions and triangular faces from a Wavefront
// OBJ file: "v x y z" lines and "f a b c" lines (1-based indices,
// optionally carrying "/texture/normal" suffixes, of which only the
// vertex index is used). It does not build a HalfEdgeMesh itself —
// callers pass the result to NewTriangleMesh — matching the teacher's
// split between a file reader and a separate mesh constructor
// (readfiles.ReadSU2Grid feeding a downstream mesh builder).
func LoadOBJ(path string) ([]Point, [][3]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mesh: opening OBJ file: %w", err)
	}
	defer f.Close()

	var positions []Point
	var faces [][3]int

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("mesh: OBJ line %d: malformed vertex %q", lineNo, line)
			}
			var p Point
			for k := 0; k < 3; k++ {
				v, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("mesh: OBJ line %d: %w", lineNo, err)
				}
				p[k] = v
			}
			positions = append(positions, p)
		case "f":
			if len(fields) != 4 {
				return nil, nil, fmt.Errorf("mesh: OBJ line %d: only triangular faces are supported, got %d vertices", lineNo, len(fields)-1)
			}
			var face [3]int
			for k := 0; k < 3; k++ {
				idx, err := parseOBJIndex(fields[k+1])
				if err != nil {
					return nil, nil, fmt.Errorf("mesh: OBJ line %d: %w", lineNo, err)
				}
				face[k] = idx
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("mesh: reading OBJ file: %w", err)
	}
	return positions, faces, nil
}

// parseOBJIndex extracts the vertex index from an OBJ face token
// ("v", "v/vt", or "v/vt/vn") and converts it from OBJ's 1-based to
// 0-based indexing.
func parseOBJIndex(tok string) (int, error) {
	v := tok
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		v = tok[:i]
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("malformed face index %q", tok)
	}
	return n - 1, nil
}

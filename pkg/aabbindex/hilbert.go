package aabbindex

// Only the forward mapping (x, y) -> distance along the curve is
// implemented, computed over a fixed-resolution integer grid.
const hilbertOrder = 16 // 2^16 cells per axis, matches the curve resolution used by static_aabb2d_index
const hilbertSide = 1 << hilbertOrder

// hilbertDistance maps an (x, y) grid coordinate, each in [0, hilbertSide),
// to its distance along the order-hilbertOrder Hilbert curve.
func hilbertDistance(x, y uint32) uint64 {
	var rx, ry uint32
	var d uint64
	for s := uint32(hilbertSide / 2); s > 0; s /= 2 {
		if (x & s) > 0 {
			rx = 1
		} else {
			rx = 0
		}
		if (y & s) > 0 {
			ry = 1
		} else {
			ry = 0
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)

		// rotate
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// hilbertCode computes the Hilbert code for the center of box b, mapped into
// the overall extents box.
func hilbertCode(b Box, extents Box) uint64 {
	width := extents.MaxX - extents.MinX
	height := extents.MaxY - extents.MinY
	cx := (b.MinX+b.MaxX)/2 - extents.MinX
	cy := (b.MinY+b.MaxY)/2 - extents.MinY

	var nx, ny float64
	if width > 0 {
		nx = cx / width
	}
	if height > 0 {
		ny = cy / height
	}

	gx := uint32(nx * float64(hilbertSide-1))
	gy := uint32(ny * float64(hilbertSide-1))
	return hilbertDistance(gx, gy)
}

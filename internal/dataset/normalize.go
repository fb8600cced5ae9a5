package dataset

// Normalize remaps each axis independently to [-1, 1]:
//
//	x' = (x - minX) / (maxX - minX) * 2 - 1
//
// and likewise for y. Labels are preserved. The input is not modified.
//
// An axis on which every point shares the same value has no extent to
// scale; every coordinate on that axis maps to 0 instead of NaN.
func Normalize(points PointSet) PointSet {
	out := make(PointSet, len(points))
	if len(points) == 0 {
		return out
	}
	minX, maxX, minY, maxY := points.Bounds()
	for i, p := range points {
		out[i] = Point2D{
			X:     rescale(p.X, minX, maxX),
			Y:     rescale(p.Y, minY, maxY),
			Label: p.Label,
		}
	}
	return out
}

func rescale(v, lo, hi float64) float64 {
	span := hi - lo
	if span == 0 {
		return 0
	}
	return (v-lo)/span*2 - 1
}

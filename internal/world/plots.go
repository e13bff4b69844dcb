package world

// Plot is a fixed slot in the town: ground position and the yaw a building on it faces.
type Plot struct {
	X      float32
	Z      float32
	Facing float32
}

// plots is the static plot table: one plaza slot, then three rings around the town square.
// Facing points each building toward the square.
var plots = [...]Plot{
	{X: 0, Z: -8.0, Facing: 0},
	{X: 17.64, Z: 3.58, Facing: -1.771},
	{X: 9.95, Z: 15.0, Facing: -2.556},
	{X: -3.58, Z: 17.64, Facing: 2.941},
	{X: -15.0, Z: 9.95, Facing: 2.156},
	{X: -17.64, Z: -3.58, Facing: 1.371},
	{X: -9.95, Z: -15.0, Facing: 0.586},
	{X: 3.58, Z: -17.64, Facing: -0.2},
	{X: 15.0, Z: -9.95, Facing: -0.985},
	{X: 29.96, Z: 1.5, Facing: -1.621},
	{X: 26.34, Z: 14.35, Facing: -2.07},
	{X: 17.51, Z: 24.36, Facing: -2.518},
	{X: 5.21, Z: 29.54, Facing: -2.967},
	{X: -8.13, Z: 28.88, Facing: 2.867},
	{X: -19.85, Z: 22.49, Facing: 2.418},
	{X: -27.65, Z: 11.65, Facing: 1.97},
	{X: -29.96, Z: -1.5, Facing: 1.521},
	{X: -26.34, Z: -14.35, Facing: 1.072},
	{X: -17.51, Z: -24.36, Facing: 0.623},
	{X: -5.21, Z: -29.54, Facing: 0.175},
	{X: 8.13, Z: -28.88, Facing: -0.274},
	{X: 19.85, Z: -22.49, Facing: -0.723},
	{X: 27.65, Z: -11.65, Facing: -1.172},
	{X: 41.75, Z: 4.61, Facing: -1.681},
	{X: 37.65, Z: 18.61, Facing: -2.03},
	{X: 29.02, Z: 30.37, Facing: -2.379},
	{X: 16.88, Z: 38.46, Facing: -2.728},
	{X: 2.71, Z: 41.91, Facing: -3.077},
	{X: -11.79, Z: 40.31, Facing: 2.857},
	{X: -24.87, Z: 33.85, Facing: 2.508},
	{X: -34.94, Z: 23.3, Facing: 2.159},
	{X: -40.81, Z: 9.95, Facing: 1.81},
	{X: -41.75, Z: -4.61, Facing: 1.461},
	{X: -37.65, Z: -18.61, Facing: 1.112},
	{X: -29.02, Z: -30.37, Facing: 0.763},
	{X: -16.88, Z: -38.46, Facing: 0.414},
	{X: -2.71, Z: -41.91, Facing: 0.065},
	{X: 11.79, Z: -40.31, Facing: -0.285},
	{X: 24.87, Z: -33.85, Facing: -0.634},
	{X: 34.94, Z: -23.3, Facing: -0.983},
	{X: 40.81, Z: -9.95, Facing: -1.332},
}

// PlotCount returns the number of plots in the table.
func PlotCount() int {
	return len(plots)
}

// PlotAt returns plot i. An out-of-range index returns plot 0 and ok == false so callers can
// record the inconsistency; the lookup itself never fails.
func PlotAt(i int) (p Plot, ok bool) {
	if i < 0 || i >= len(plots) {
		return plots[0], false
	}
	return plots[i], true
}

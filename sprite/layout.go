package sprite

// Layout is an ordered grid of frame name slots describing where each
// named frame is placed in a sheet. An empty name leaves its slot
// transparent, as does a name with no matching frame.
type Layout [][]string

// Columns returns the widest row in the layout.
func (l Layout) Columns() int {
	n := 0
	for _, row := range l {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// CharacterLayout is the sheet arrangement expected by the game engine for
// directional character sprites: four rows of four walk phases followed by
// one row of idle poses. It is configuration, not a constraint; any Layout
// can be passed to RasterizeSheet.
var CharacterLayout = Layout{
	{"walk_down_0", "walk_down_1", "walk_down_2", "walk_down_3"},
	{"walk_up_0", "walk_up_1", "walk_up_2", "walk_up_3"},
	{"walk_left_0", "walk_left_1", "walk_left_2", "walk_left_3"},
	{"walk_right_0", "walk_right_1", "walk_right_2", "walk_right_3"},
	{"idle_down_0", "idle_up_0", "idle_left_0", "idle_right_0"},
}

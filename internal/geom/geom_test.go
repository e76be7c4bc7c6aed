package geom

import "testing"

type containsTestCase struct {
	Name   string
	Box    Box
	Point  Point
	Output bool
}

var scenarioBox = BoxFromRect(10, 10, 40, 40)

var containsGoldenTests = []containsTestCase{
	{
		Name:   "centre",
		Box:    scenarioBox,
		Point:  Point{X: 30, Y: 30},
		Output: true,
	},
	{
		Name:   "left edge",
		Box:    scenarioBox,
		Point:  Point{X: 10, Y: 30},
		Output: false,
	},
	{
		Name:   "right edge",
		Box:    scenarioBox,
		Point:  Point{X: 50, Y: 30},
		Output: false,
	},
	{
		Name:   "top edge",
		Box:    scenarioBox,
		Point:  Point{X: 30, Y: 10},
		Output: false,
	},
	{
		Name:   "bottom edge",
		Box:    scenarioBox,
		Point:  Point{X: 30, Y: 50},
		Output: false,
	},
	{
		Name:   "outside top left",
		Box:    scenarioBox,
		Point:  Point{X: 5, Y: 5},
		Output: false,
	},
	{
		Name:   "just inside corner",
		Box:    scenarioBox,
		Point:  Point{X: 10.001, Y: 49.999},
		Output: true,
	},
	{
		Name:   "inside x, outside y",
		Box:    scenarioBox,
		Point:  Point{X: 30, Y: 80},
		Output: false,
	},
	{
		Name: "malformed box",
		Box: Box{
			Min: Point{X: 50, Y: 50},
			Max: Point{X: 10, Y: 10},
		},
		Point:  Point{X: 30, Y: 30},
		Output: false,
	},
	{
		Name:   "degenerate width",
		Box:    BoxFromRect(10, 10, 0, 40),
		Point:  Point{X: 10, Y: 30},
		Output: false,
	},
	{
		Name:   "degenerate height",
		Box:    BoxFromRect(10, 10, 40, 0),
		Point:  Point{X: 30, Y: 10},
		Output: false,
	},
}

func TestContains(t *testing.T) {
	for _, test := range containsGoldenTests {
		if res := Contains(test.Box, test.Point); res != test.Output {
			t.Errorf("%s: Contains(%+v, %+v) returned %v but expected %v", test.Name, test.Box, test.Point, res, test.Output)
		}
	}
}

func TestContainsStrictlyInsideGrid(t *testing.T) {
	box := BoxFromRect(-20, 5, 60, 30)
	for x := -19.5; x < 40; x += 0.5 {
		for y := 5.5; y < 35; y += 0.5 {
			if !Contains(box, Point{X: x, Y: y}) {
				t.Fatalf("expected (%v, %v) to be inside %+v", x, y, box)
			}
		}
	}
}

func TestContainsOutsideOrOnBoundary(t *testing.T) {
	box := BoxFromRect(0, 0, 10, 10)
	points := []Point{
		{X: 0, Y: 5},
		{X: -1, Y: 5},
		{X: 10, Y: 5},
		{X: 11, Y: 5},
		{X: 5, Y: 0},
		{X: 5, Y: -1},
		{X: 5, Y: 10},
		{X: 5, Y: 11},
		{X: 0, Y: 0},
		{X: 10, Y: 10},
	}
	for _, point := range points {
		if Contains(box, point) {
			t.Errorf("expected %+v to be outside %+v", point, box)
		}
	}
}

func TestContainsDegenerateBoxNeverHits(t *testing.T) {
	boxes := []Box{
		BoxFromRect(5, 5, 0, 0),
		BoxFromRect(5, 5, 0, 10),
		BoxFromRect(5, 5, 10, 0),
	}
	for _, box := range boxes {
		for x := 0.0; x <= 20; x += 0.25 {
			for y := 0.0; y <= 20; y += 0.25 {
				if Contains(box, Point{X: x, Y: y}) {
					t.Fatalf("degenerate box %+v should never contain (%v, %v)", box, x, y)
				}
			}
		}
	}
}

func TestBoxFromCorners(t *testing.T) {
	want := Box{
		Min: Point{X: 10, Y: 10},
		Max: Point{X: 50, Y: 50},
	}
	// Corners given clockwise from bottom-right
	got := BoxFromCorners(
		Point{X: 50, Y: 50},
		Point{X: 10, Y: 50},
		Point{X: 10, Y: 10},
		Point{X: 50, Y: 10},
	)
	if got != want {
		t.Errorf("BoxFromCorners returned %+v but expected %+v", got, want)
	}
	if got != scenarioBox {
		t.Errorf("BoxFromCorners returned %+v, BoxFromRect returned %+v", got, scenarioBox)
	}
}

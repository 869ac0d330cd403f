package pclasso

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

func randomPoints(n int, seed int64) pc.Vec3Slice {
	rnd := rand.New(rand.NewSource(seed))
	pts := make(pc.Vec3Slice, n)
	for i := range pts {
		pts[i] = mat.Vec3{
			rnd.Float32()*4000 - 2000,
			rnd.Float32()*4000 - 2000,
			rnd.Float32()*6000 - 3000,
		}
	}
	return pts
}

func TestRegion_Complementary(t *testing.T) {
	outward, err := BuildRegion(squareLasso, mat.Vec3{}, false)
	if err != nil {
		t.Fatal(err)
	}
	inverted, err := BuildRegion(squareLasso, mat.Vec3{}, true)
	if err != nil {
		t.Fatal(err)
	}

	strictlyInside := func(r *Region, p mat.Vec3) bool {
		for i := range r {
			if r[i].Distance(p) > -0.01 {
				return false
			}
		}
		return true
	}

	var nOut, nIn int
	for _, p := range randomPoints(10000, 1) {
		if strictlyInside(&outward, p) {
			nOut++
			if inverted.Contains(p) {
				t.Errorf("%v is inside of both regions", p)
			}
		}
		if strictlyInside(&inverted, p) {
			nIn++
			if outward.Contains(p) {
				t.Errorf("%v is inside of both regions", p)
			}
		}
	}
	if nOut == 0 || nIn == 0 {
		t.Fatalf("Test points must cover both regions, outward: %d, inverted: %d", nOut, nIn)
	}
}

func TestClassifier_SelectAll(t *testing.T) {
	r, err := BuildRegion(reversed(squareLasso), mat.Vec3{}, false)
	if err != nil {
		t.Fatal(err)
	}
	pts := pc.Vec3Slice{
		{1000, 1000, -2000},
		{0, 0, -2000},
		{0, 0, 10},
		{10, -10, -100},
	}

	var c *Classifier
	if sel := c.SelectAll(pts, r); !reflect.DeepEqual([]int{1, 3}, sel) {
		t.Errorf("Expected [1 3], got %v", sel)
	}
	if sel := NewClassifier().SelectAll(nil, r); len(sel) != 0 {
		t.Errorf("Nothing must be selected without candidates, got %v", sel)
	}
}

func TestClassifier_Parallel(t *testing.T) {
	r, err := BuildRegion(reversed(squareLasso), mat.Vec3{}, false)
	if err != nil {
		t.Fatal(err)
	}
	pts := randomPoints(10007, 2)

	sequential := (&Classifier{}).SelectAll(pts, r)
	if len(sequential) == 0 {
		t.Fatal("Test points must be partially selected")
	}

	for name, c := range map[string]*Classifier{
		"Workers2":  {Workers: 2, ParallelThreshold: 1},
		"Workers7":  {Workers: 7, ParallelThreshold: 100},
		"Workers64": {Workers: 64, ParallelThreshold: 1},
	} {
		c := c
		t.Run(name, func(t *testing.T) {
			if sel := c.SelectAll(pts, r); !reflect.DeepEqual(sequential, sel) {
				t.Errorf("Parallel selection differs from sequential one, %d != %d points", len(sel), len(sequential))
			}
		})
	}
}

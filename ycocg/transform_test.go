package ycocg

import "testing"

func TestForwardInverseBoundaryBlack(t *testing.T) {
	src := NewRanges(3, 3, 3) // par = 3/4+1 = 1
	tr, err := NewTransform(src)
	if err != nil {
		t.Fatalf("NewTransform: %v", err)
	}
	if tr.Par() != 1 {
		t.Fatalf("par = %d, want 1", tr.Par())
	}
	y, co, cg := tr.Forward(0, 0, 0)
	if y != 0 || co != -1 || cg != -1 {
		t.Fatalf("Forward(0,0,0) = (%d,%d,%d), want (0,-1,-1)", y, co, cg)
	}
	r, g, b := tr.Inverse(y, co, cg)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("Inverse round trip = (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestForwardInverseBoundaryExample(t *testing.T) {
	src := NewRanges(255, 255, 255) // par = 255/4+1 = 64
	tr, err := NewTransform(src)
	if err != nil {
		t.Fatalf("NewTransform: %v", err)
	}
	if tr.Par() != 64 {
		t.Fatalf("par = %d, want 64", tr.Par())
	}
	y, co, cg := tr.Forward(255, 128, 64)
	if y != 143 || co != 190 || cg != 30 {
		t.Fatalf("Forward(255,128,64) = (%d,%d,%d), want (143,190,30)", y, co, cg)
	}
	r, g, b := tr.Inverse(y, co, cg)
	if r != 255 || g != 128 || b != 64 {
		t.Fatalf("Inverse round trip = (%d,%d,%d), want (255,128,64)", r, g, b)
	}
}

func TestForwardInverseExhaustiveRoundTrip(t *testing.T) {
	for _, maxC := range []ColorVal{1, 3, 7, 15} {
		src := NewRanges(maxC, maxC, maxC)
		tr, err := NewTransform(src)
		if err != nil {
			t.Fatalf("NewTransform(%d): %v", maxC, err)
		}
		for r := ColorVal(0); r <= maxC; r++ {
			for g := ColorVal(0); g <= maxC; g++ {
				for b := ColorVal(0); b <= maxC; b++ {
					y, co, cg := tr.Forward(r, g, b)
					gotR, gotG, gotB := tr.Inverse(y, co, cg)
					if gotR != r || gotG != g || gotB != b {
						t.Fatalf("round trip (%d,%d,%d) -> (%d,%d,%d) -> (%d,%d,%d)",
							r, g, b, y, co, cg, gotR, gotG, gotB)
					}
				}
			}
		}
	}
}

func TestRangeOracleEveryYCoHasAPixel(t *testing.T) {
	for _, maxC := range []ColorVal{3, 7, 15} {
		src := NewRanges(maxC, maxC, maxC)
		tr, err := NewTransform(src)
		if err != nil {
			t.Fatalf("NewTransform(%d): %v", maxC, err)
		}
		par := tr.Par()
		oracle := tr.Ranges()

		reachable := make(map[[2]ColorVal]bool)
		for r := ColorVal(0); r <= maxC; r++ {
			for g := ColorVal(0); g <= maxC; g++ {
				for b := ColorVal(0); b <= maxC; b++ {
					y, co, _ := tr.Forward(r, g, b)
					reachable[[2]ColorVal{y, co}] = true
				}
			}
		}

		for y := oracle.MinY(); y <= oracle.MaxY(); y++ {
			minCo, maxCo := oracle.MinCo(y), oracle.MaxCo(y)
			if minCo > maxCo {
				t.Fatalf("par=%d y=%d: MinCo %d > MaxCo %d", par, y, minCo, maxCo)
			}
			for co := minCo; co <= maxCo; co++ {
				if !reachable[[2]ColorVal{y, co}] {
					t.Fatalf("par=%d y=%d co=%d: claimed reachable by oracle but no source pixel maps to it", par, y, co)
				}
			}
		}
	}
}

func TestRangeOracleCgNonEmptyForEveryValidCo(t *testing.T) {
	for _, maxC := range []ColorVal{3, 7, 15} {
		src := NewRanges(maxC, maxC, maxC)
		tr, err := NewTransform(src)
		if err != nil {
			t.Fatalf("NewTransform(%d): %v", maxC, err)
		}
		oracle := tr.Ranges()
		for y := oracle.MinY(); y <= oracle.MaxY(); y++ {
			for co := oracle.MinCo(y); co <= oracle.MaxCo(y); co++ {
				lo, hi := oracle.MinCg(y, co), oracle.MaxCg(y, co)
				if lo > hi {
					t.Fatalf("par=%d y=%d co=%d: MinCg %d > MaxCg %d for a co claimed valid by the Co oracle",
						tr.Par(), y, co, lo, hi)
				}
			}
		}
	}
}

func TestRangeOracleSentinelForInvalidCo(t *testing.T) {
	src := NewRanges(15, 15, 15)
	tr, err := NewTransform(src)
	if err != nil {
		t.Fatalf("NewTransform: %v", err)
	}
	oracle := tr.Ranges()
	y := oracle.MinY()
	co := oracle.MaxCo(y) + 1000 // well outside the valid window
	lo, hi := oracle.MinCg(y, co), oracle.MaxCg(y, co)
	if lo <= hi {
		t.Fatalf("expected inverted sentinel range for out-of-window co, got [%d,%d]", lo, hi)
	}
	if lo != 8*ColorVal(tr.Par()) {
		t.Fatalf("MinCg sentinel = %d, want %d", lo, 8*ColorVal(tr.Par()))
	}
	if hi != -8*ColorVal(tr.Par()) {
		t.Fatalf("MaxCg sentinel = %d, want %d", hi, -8*ColorVal(tr.Par()))
	}
}

func TestNewTransformRejectsFewerThanThreePlanes(t *testing.T) {
	src := Ranges{{0, 7}, {0, 7}}
	if _, err := NewTransform(src); err == nil {
		t.Fatalf("expected error for a 2-plane source")
	}
}

func TestNewTransformRejectsNegativeMinimum(t *testing.T) {
	src := Ranges{{-1, 7}, {0, 7}, {0, 7}}
	if _, err := NewTransform(src); err == nil {
		t.Fatalf("expected error for a plane with a negative minimum")
	}
}

func TestNewTransformRejectsConstantPlane(t *testing.T) {
	src := Ranges{{5, 5}, {0, 7}, {0, 7}}
	if _, err := NewTransform(src); err == nil {
		t.Fatalf("expected error for a constant plane")
	}
}

func TestColorRangesYCoCgMinMax(t *testing.T) {
	src := NewRanges(255, 255, 255)
	tr, err := NewTransform(src)
	if err != nil {
		t.Fatalf("NewTransform: %v", err)
	}
	oracle := tr.Ranges()
	par := ColorVal(tr.Par())
	if oracle.Min(0) != 0 || oracle.Max(0) != 4*par-1 {
		t.Fatalf("plane 0 range = [%d,%d], want [0,%d]", oracle.Min(0), oracle.Max(0), 4*par-1)
	}
	if oracle.Min(1) != -4*par || oracle.Max(1) != 4*par-2 {
		t.Fatalf("plane 1 range = [%d,%d], want [%d,%d]", oracle.Min(1), oracle.Max(1), -4*par, 4*par-2)
	}
	if oracle.Min(2) != -4*par || oracle.Max(2) != 4*par-2 {
		t.Fatalf("plane 2 range = [%d,%d], want [%d,%d]", oracle.Min(2), oracle.Max(2), -4*par, 4*par-2)
	}
}

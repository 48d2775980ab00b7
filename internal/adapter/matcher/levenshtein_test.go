package matcher

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"pslam", "psalms", 3},
		{"john", "john", 0},
		{"", "john", 4},
		{"john", "", 4},
		{"", "", 0},
		{"a", "b", 1},
		{"mark", "mars", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"genesis", "exodus"},
		{"pslam", "psalms"},
		{"ez", "ezekiel"},
		{"", "ruth"},
	}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) != Distance(%q, %q)", p[0], p[1], p[1], p[0])
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "revelation", "song of solomon"} {
		if d := Distance(s, s); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, expected 0", s, s, d)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"john", "john", 1},
		{"pslam", "psalms", 0.5},
		{"abcd", "wxyz", 0},
	}

	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); !floatEquals(got, tt.want) {
			t.Errorf("Similarity(%q, %q) = %f, expected %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func floatEquals(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

// SPDX-License-Identifier: MIT

package compare

import (
	"math"

	"github.com/katalvlaran/sival/response"
)

// Values aligns two scalar sequences and returns the accumulated cost and,
// when requested, the alignment path.
func Values(a, b []float64, opts *Options) (float64, []Step, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyCurve
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, ErrBadWindow
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	window := o.Window
	if window == -1 {
		window = max(n, m)
	}
	// Diagonal must stay reachable when the lengths differ.
	window = max(window, absInt(n-m))

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}

		return dp[i%2]
	}
	for i := 1; i <= n; i++ {
		cur, prev := row(i), row(i-1)
		cur[0] = inf
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				cur[j] = inf

				continue
			}
			best := min(prev[j-1], prev[j]+o.SlopePenalty, cur[j-1]+o.SlopePenalty)
			cur[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}
	dist := row(n)[m]

	if !o.ReturnPath {
		return dist, nil, nil
	}

	return dist, backtrack(dp, n, m, o.SlopePenalty), nil
}

// backtrack walks from (n, m) to (1, 1) taking the cheapest predecessor,
// preferring the diagonal on ties.
func backtrack(dp [][]float64, n, m int, penalty float64) []Step {
	path := make([]Step, 0, n+m)
	i, j := n, m
	for {
		path = append(path, Step{A: i - 1, B: j - 1})
		if i == 1 && j == 1 {
			break
		}
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			match, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
			switch {
			case match <= up && match <= left:
				i, j = i-1, j-1
			case up <= left:
				i--
			default:
				j--
			}
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// Curves compares two sampled responses by value. The frequency grids may
// differ; MaxShiftOctaves reports how far the alignment had to reach.
func Curves(a, b []response.Point, opts *Options) (Result, error) {
	va, vb := values(a), values(b)
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	wantPath := o.ReturnPath
	if o.MemoryMode == FullMatrix {
		o.ReturnPath = true
	}

	dist, path, err := Values(va, vb, &o)
	if err != nil {
		return Result{}, err
	}
	res := Result{Distance: dist, Mean: dist / float64(max(len(a), len(b)))}
	if path == nil {
		return res, nil
	}
	res.Mean = dist / float64(len(path))
	for _, s := range path {
		fa, fb := a[s.A].Frequency, b[s.B].Frequency
		if fa > 0 && fb > 0 {
			res.MaxShiftOctaves = max(res.MaxShiftOctaves, math.Abs(math.Log2(fa/fb)))
		}
	}
	if wantPath {
		res.Path = path
	}

	return res, nil
}

func values(pts []response.Point) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Value
	}

	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

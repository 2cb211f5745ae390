// Package compare measures how far apart two response curves are.
//
// 🚀 What does it do?
//
//	Two drivers with nearly the same parameters produce curves that differ
//	mostly by a small shift of the resonance along the frequency axis. A
//	point-by-point distance punishes that shift heavily; Dynamic Time
//	Warping aligns the curves first and sums the residual differences:
//
//	  D[0][0] = 0, D[i][0] = D[0][j] = +∞
//	  D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j-1],
//	                                    D[i-1][j] + SlopePenalty,
//	                                    D[i][j-1] + SlopePenalty)
//
// ✨ Options:
//   - Window limits |i−j| (Sakoe–Chiba band); -1 disables it.
//   - SlopePenalty discourages stretching one curve against the other.
//   - TwoRows keeps O(m) memory but cannot return the alignment path.
//
// ⚙️ Usage:
//
//	res, err := compare.Curves(measured, simulated, nil)
//	fmt.Println(res.Mean, res.MaxShiftOctaves)
//
// Complexity: O(n·m) time; O(n·m) memory with FullMatrix, O(m) with TwoRows.
package compare

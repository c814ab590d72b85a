package board

import "math"

// CheckMateScore is the sentinel absolute score assigned to a position in
// which one side's king has been captured. It is kept well below
// math.MaxInt64 so that search can add or subtract a few plies' worth of
// mate-distance adjustment without overflowing. Always interpreted from
// White's point of view: a position with Black's king missing scores
// +CheckMateScore, with White's king missing scores -CheckMateScore.
const CheckMateScore int64 = math.MaxInt64 / 2

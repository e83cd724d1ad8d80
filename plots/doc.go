// Package plots measures rectangular plots against a fenced boundary
// loop. The input is an ordered list of "x,y" fence posts; consecutive
// posts (and the last back to the first) are connected by straight fence
// runs.
//
// What
//
//   - MaxArea: the largest inclusive rectangle spanned by any two posts,
//     area = (|dx|+1)·(|dy|+1).
//   - Boundary: the fence rasterized into unit steps — every integer
//     point along every run, in walking order, closed back to the start.
//   - MaxContainedArea: among all post-pair rectangles, in descending
//     area order, the area of the first rectangle that lies entirely
//     inside the fence.
//
// Containment
//
//	A rectangle is inside the fence when all four corners (and its
//	center) sit inside or on the boundary ring — tested with
//	planar.RingContains from the orb geometry library — and no fence
//	step passes through the rectangle's open interior. Fence steps are
//	at most one unit long, so the interior test only needs each step's
//	endpoints and midpoint, checked in exact doubled-integer arithmetic.
//
// Complexity
//
//	O(N²) rectangles and O(P) boundary steps give O(N²·P) worst case;
//	the descending-area scan returns at the first hit.
//
// Errors
//
//   - ErrMalformedCoord for lines that are not two integers.
//   - ErrTooFewPoints when fewer than two posts are supplied.
//   - ErrNoRectangle when no pair rectangle fits inside the fence.
package plots

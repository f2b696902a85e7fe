package paginator

import "math"

// Resolve decides where a gesture that started at startY and ended at endY
// settles, given the page height and snap threshold.
//
// The nearest page is round(endY/height), never below zero. A gesture moving
// up commits to the previous page once it is more than threshold*height above
// that page's boundary; a gesture moving down commits to the next page once
// it is more than threshold*height below it. Anything else rolls back to the
// nearest page. The target page is never negative and has no upper bound;
// see Decision.Bound.
func Resolve(startY, endY, height, threshold float64) (Decision, error) {
	if !(height > 0) || math.IsInf(height, 0) || !finite(startY) || !finite(endY) {
		return Decision{}, ErrNotReady
	}

	page := int(math.Round(endY / height))
	if page < 0 {
		page = 0
	}
	pageOffset := float64(page) * height
	limit := height * threshold

	d := Decision{
		StartY:     startY,
		EndY:       endY,
		Height:     height,
		Page:       page,
		Direction:  DirectionRollback,
		TargetPage: page,
	}

	switch {
	case startY > endY && pageOffset-endY > limit:
		d.Direction = DirectionUp
		d.TargetPage = page - 1
	case startY < endY && endY-pageOffset > limit:
		d.Direction = DirectionDown
		d.TargetPage = page + 1
	}

	if d.TargetPage < 0 {
		d.TargetPage = 0
	}
	d.TargetY = float64(d.TargetPage) * height
	return d, nil
}

// Bound clamps the target to the last of pageCount pages.
// A pageCount of zero or less leaves the decision untouched.
func (d Decision) Bound(pageCount int) Decision {
	if pageCount <= 0 || d.TargetPage < pageCount {
		return d
	}
	d.TargetPage = pageCount - 1
	d.TargetY = float64(d.TargetPage) * d.Height
	d.Bounded = true
	return d
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

package circleimage

import "errors"

var (
	// ErrInvalidConfiguration is returned when a caller asks for a fit mode
	// other than center-crop or enables view-bounds adjustment.
	// The rejected call leaves the View unchanged.
	ErrInvalidConfiguration = errors.New("circleimage: invalid configuration")

	// ErrNotReady is returned by Configure when the viewport or the image
	// has no area. View treats it as a deferred state, not a failure.
	ErrNotReady = errors.New("circleimage: not ready")

	// ErrSampleUnavailable is returned when an image sample cannot be
	// extracted because its working buffer cannot be allocated.
	ErrSampleUnavailable = errors.New("circleimage: image sample unavailable")
)

// Package easing provides easing curves: functions that remap linear progress
// to eased progress, producing the acceleration and deceleration familiar from
// motion design.
//
// # Curves
//
// Every curve is a [Func], a pure function of a single progress value x. By
// convention x ∈ [0, 1], where 0 is the start and 1 is the end of a
// transition. All curves map 0 to 0 and 1 to 1. The behavior for x outside of
// [0, 1] is undefined; the formulas will happily extrapolate, but callers must
// not rely on the results.
//
// The package provides ten families of curves, each in three directions:
//
//   - Sine ([InSine], [OutSine], [InOutSine])
//   - Quad ([InQuad], [OutQuad], [InOutQuad])
//   - Cubic ([InCubic], [OutCubic], [InOutCubic])
//   - Quart ([InQuart], [OutQuart], [InOutQuart])
//   - Quint ([InQuint], [OutQuint], [InOutQuint])
//   - Expo ([InExpo], [OutExpo], [InOutExpo])
//   - Circ ([InCirc], [OutCirc], [InOutCirc])
//   - Back ([InBack], [OutBack], [InOutBack])
//   - Elastic ([InElastic], [OutElastic], [InOutElastic])
//   - Bounce ([InBounce], [OutBounce], [InOutBounce])
//
// An "In" curve applies the easing at the start of the transition, an "Out"
// curve at the end, and an "InOut" curve at both ends.
//
// The Back and Elastic families overshoot: for some x in (0, 1) their results
// lie outside of [0, 1]. This is intentional and produces the anticipation and
// wobble effects these curves are known for. All other families are monotonic
// and stay within [0, 1].
//
// All curves are safe for concurrent use and do not allocate.
//
// # Looking up curves by name
//
// Curves are identified by a [Kind]. [Resolve] maps a kind to its curve, and
// [ParseKind] maps names such as "easeOutBounce" to kinds. Kind implements
// [encoding.TextMarshaler] and [encoding.TextUnmarshaler] as well as the YAML
// marshaling interfaces, so that curves can be named in configuration files.
//
// # Cubic Béziers
//
// In addition to the fixed set of curves, [CubicBezier] constructs timing
// functions from cubic Bézier curves, using the same parametrization as CSS's
// cubic-bezier() timing function. [Ease], [EaseIn], [EaseOut] and [EaseInOut]
// are the predefined CSS timing functions.
//
// # Literature
//
//   - [Easing functions cheat sheet]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [CSS Easing Functions Level 1]
//
// [Easing functions cheat sheet]: https://easings.net/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [CSS Easing Functions Level 1]: https://www.w3.org/TR/css-easing-1/#cubic-bezier-easing-functions
package easing

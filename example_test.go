package easing_test

import (
	"fmt"

	"gopkg.in/yaml.v3"
	"honnef.co/go/easing"
)

func ExampleResolve() {
	fn, ok := easing.Resolve(easing.EaseOutQuad)
	fmt.Println(ok, fn(0.5))

	// Kinds outside of the named set resolve to nothing. Callers typically
	// fall back to a default curve.
	fn, ok = easing.Resolve(easing.Kind(42))
	if !ok {
		fn = easing.Linear
	}
	fmt.Println(ok, fn(0.5))
	// Output:
	// true 0.75
	// false 0.5
}

func ExampleInOutQuad() {
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("%.3f ", easing.InOutQuad(x))
	}
	fmt.Println()
	// Output:
	// 0.000 0.125 0.500 0.875 1.000
}

func ExampleParseKind() {
	k, err := easing.ParseKind("outBounce")
	if err != nil {
		panic(err)
	}
	fmt.Println(k, k.Family(), k.Direction())

	_, err = easing.ParseKind("easeInWobble")
	fmt.Println(err)
	// Output:
	// easeOutBounce Bounce Out
	// unknown easing curve: "easeInWobble"
}

func ExampleKind_UnmarshalYAML() {
	type transition struct {
		Property string
		Duration string
		Curve    easing.Kind
	}
	doc := `
- property: opacity
  duration: 200ms
  curve: easeOutCubic
- property: transform
  duration: 600ms
  curve: inOutElastic
`
	var transitions []transition
	if err := yaml.Unmarshal([]byte(doc), &transitions); err != nil {
		panic(err)
	}
	for _, tr := range transitions {
		fmt.Printf("%s %s %s %.4f\n", tr.Property, tr.Duration, tr.Curve, tr.Curve.Func()(0.5))
	}
	// Output:
	// opacity 200ms easeOutCubic 0.8750
	// transform 600ms easeInOutElastic 0.5000
}

func ExampleCubicBezier() {
	// The same curve as CSS's "ease".
	fn := easing.CubicBezier(0.25, 0.1, 0.25, 1.0)
	fmt.Printf("%.2f %.2f %.2f\n", fn(0), fn(0.5), fn(1))
	// Output:
	// 0.00 0.80 1.00
}

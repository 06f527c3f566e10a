package nn

import (
	"github.com/chewxy/math32"
)

// Domain tags a pre-activation value. Range tags a post-activation value and
// Gradient the derivative evaluated there. The three are distinct types on
// purpose: a derivative map consumes the activation's output, never its raw
// input, and the compiler rejects a mixed-up call site.
type (
	Domain   float32
	Range    float32
	Gradient float32
)

// DifferentiableFunction pairs a forward activation with its derivative.
// The derivative takes the forward map's output, so only functions whose
// derivative is expressible from their own value fit here (sigmoid:
// s' = s*(1-s)). Keeping the pair in one immutable value guarantees training
// code never combines a forward map with somebody else's derivative.
type DifferentiableFunction struct {
	Forward    func(Domain) Range
	Derivative func(Range) Gradient
}

// Sigmoid is the logistic function 1/(1+exp(-x)).
func Sigmoid(x Domain) Range {
	return Range(1 / (1 + math32.Exp(float32(-x))))
}

// SigmoidDerivative computes the logistic derivative from the activation
// value r, not the pre-activation input.
func SigmoidDerivative(r Range) Gradient {
	return Gradient(float32(r) * (1 - float32(r)))
}

// SigmoidActivation is the unit handed to training code: apply Forward, keep
// its output, and feed that same output to Derivative for the gradient.
var SigmoidActivation = DifferentiableFunction{
	Forward:    Sigmoid,
	Derivative: SigmoidDerivative,
}

// ApplyForward applies the forward map elementwise. The result holds Range
// values and is the only valid input to ApplyDerivative.
func (f DifferentiableFunction) ApplyForward(m Matrix) Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, x := range m.Data {
		out.Data[i] = float32(f.Forward(Domain(x)))
	}
	return out
}

// ApplyDerivative applies the derivative map elementwise to a matrix of
// activation outputs, as produced by ApplyForward.
func (f DifferentiableFunction) ApplyDerivative(m Matrix) Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, r := range m.Data {
		out.Data[i] = float32(f.Derivative(Range(r)))
	}
	return out
}

// Logit is the inverse of the logistic function, log(x) - log(1-x). Defined
// for x strictly inside (0,1); the boundaries give ±Inf per IEEE semantics
// and are the caller's problem.
func Logit(x float32) float32 {
	return math32.Log(x) - math32.Log(1-x)
}

// ProportionActive returns the fraction of elements strictly greater than
// 0.5, summarizing a stochastic binary unit vector for training diagnostics.
func ProportionActive(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	active := 0
	for _, x := range v {
		if x > 0.5 {
			active++
		}
	}
	return float32(active) / float32(len(v))
}

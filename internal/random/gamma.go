package random

import "math"

var (
	sgMagicConst = 1.0 + math.Log(4.5)
	log4         = math.Log(4.0)
)

// Gamma draws from the Gamma distribution with shape alpha and scale beta.
//
// The branch taken depends on alpha: Cheng's rejection method for
// alpha > 1, an inverted exponential for alpha == 1 and the Ahrens-Dieter
// GS method for 0 < alpha < 1. Callers must validate alpha > 0.
func Gamma(src Source, alpha, beta float64) float64 {
	switch {
	case alpha > 1:
		ainv := math.Sqrt(2.0*alpha - 1.0)
		bbb := alpha - log4
		ccc := alpha + ainv

		for {
			u1 := src.Float64()
			if u1 < 1e-7 || u1 > 0.9999999 {
				continue
			}
			u2 := 1.0 - src.Float64()
			v := math.Log(u1/(1.0-u1)) / ainv
			x := alpha * math.Exp(v)
			z := u1 * u1 * u2
			r := bbb + ccc*v - x
			if r+sgMagicConst-4.5*z >= 0.0 || r >= math.Log(z) {
				return x * beta
			}
		}
	case alpha == 1:
		u := src.Float64()
		for u <= 1e-7 {
			u = src.Float64()
		}
		return -math.Log(u) * beta
	default:
		var x float64
		for {
			u := src.Float64()
			b := (math.E + alpha) / math.E
			p := b * u
			if p <= 1.0 {
				x = math.Pow(p, 1.0/alpha)
			} else {
				x = -math.Log((b - p) / alpha)
			}
			u1 := src.Float64()
			if p > 1.0 {
				if u1 <= math.Pow(x, alpha-1.0) {
					break
				}
			} else if u1 <= math.Exp(-x) {
				break
			}
		}
		return x * beta
	}
}

// Beta draws from the Beta distribution as Y1/(Y1+Y2) for independent
// unit-scale Gamma draws with shapes alpha and beta.
func Beta(src Source, alpha, beta float64) float64 {
	y := Gamma(src, alpha, 1)
	if y == 0 {
		return 0
	}
	return y / (y + Gamma(src, beta, 1))
}

// Biased is a Source whose values follow Beta(alpha, beta) instead of
// the uniform distribution.
type Biased struct {
	src         Source
	alpha, beta float64
}

func NewBiased(src Source, alpha, beta float64) (*Biased, error) {
	if !(alpha > 0) || !(beta > 0) {
		return nil, ErrInvalidShape
	}
	return &Biased{src: src, alpha: alpha, beta: beta}, nil
}

// Float64 returns a Beta draw in [0, 1). Draws that round up to 1 are
// discarded.
func (b *Biased) Float64() float64 {
	for {
		v := Beta(b.src, b.alpha, b.beta)
		if v < 1 {
			return v
		}
	}
}


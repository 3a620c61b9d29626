package chem

// Greek is a lowercase greek letter used as a leading formula descriptor,
// most prominently as a mineral polymorph prefix (α-Fe2O3 vs γ-Fe2O3).
type Greek uint8

const (
	Alpha Greek = iota + 1
	Beta
	Gamma
	Delta
	Epsilon
	Zeta
	Eta
	Theta
	Iota
	Kappa
	Lambda
	Mu
	Nu
	Xi
	Omicron
	Pi
	Rho
	Sigma
	Tau
	Upsilon
	Phi
	Chi
	Psi
	Omega
)

const maxGreek = Omega

var greekRunes = [maxGreek + 1]rune{
	Alpha: 'α', Beta: 'β', Gamma: 'γ', Delta: 'δ', Epsilon: 'ε',
	Zeta: 'ζ', Eta: 'η', Theta: 'θ', Iota: 'ι', Kappa: 'κ',
	Lambda: 'λ', Mu: 'μ', Nu: 'ν', Xi: 'ξ', Omicron: 'ο',
	Pi: 'π', Rho: 'ρ', Sigma: 'σ', Tau: 'τ', Upsilon: 'υ',
	Phi: 'φ', Chi: 'χ', Psi: 'ψ', Omega: 'ω',
}

// GreekFromRune resolves a lowercase greek code point. The final sigma ς is
// folded onto σ.
func GreekFromRune(r rune) (Greek, bool) {
	if r == 'ς' {
		return Sigma, true
	}
	for g := Alpha; g <= maxGreek; g++ {
		if greekRunes[g] == r {
			return g, true
		}
	}
	return 0, false
}

// IsValid reports whether g denotes a known greek letter.
func (g Greek) IsValid() bool {
	return g >= Alpha && g <= maxGreek
}

// Rune returns the lowercase code point for g.
func (g Greek) Rune() rune {
	if !g.IsValid() {
		return '?'
	}
	return greekRunes[g]
}

func (g Greek) String() string { return string(g.Rune()) }

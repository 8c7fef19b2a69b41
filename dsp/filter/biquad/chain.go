package biquad

// Chain runs sections in series.
type Chain struct {
	sections []Section
}

// NewChain returns a cascade with one section per coefficient set.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// Len returns the number of sections.
func (c *Chain) Len() int { return len(c.sections) }

// ProcessSample runs x through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters buf in place. Passthrough sections are skipped.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		if !c.sections[i].IsPassthrough() {
			c.sections[i].ProcessBlock(buf)
		}
	}
}

// UpdateCoefficients replaces the coefficients section by section, keeping
// each delay line. coeffs must have Len entries; extra entries are ignored
// and missing ones leave their sections unchanged.
func (c *Chain) UpdateCoefficients(coeffs []Coefficients) {
	for i := range min(len(coeffs), len(c.sections)) {
		c.sections[i].Coefficients = coeffs[i]
	}
}

// Reset clears every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Magnitude returns the product of the section magnitudes at freq.
func (c *Chain) Magnitude(freq, sampleRate float64) float64 {
	m := 1.0
	for i := range c.sections {
		m *= c.sections[i].Magnitude(freq, sampleRate)
	}

	return m
}

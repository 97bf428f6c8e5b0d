package transforms

// MandelbrotN uses each point's own coordinate as the added constant. Every
// point starts at zero.
type MandelbrotN struct {
	N float64
}

func (m MandelbrotN) Start(p complex128) (complex128, complex128) {
	return 0, p
}

func (m MandelbrotN) Next(z complex128, c complex128) complex128 {
	return Pow(z, m.N) + c
}

var _ Family = MandelbrotN{}

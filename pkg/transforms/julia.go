package transforms

// JuliaN adds the same constant C to every point on every step. Points start
// at their own coordinate.
type JuliaN struct {
	N float64
	C complex128
}

func (j JuliaN) Start(p complex128) (complex128, complex128) {
	return p, j.C
}

func (j JuliaN) Next(z complex128, c complex128) complex128 {
	return Pow(z, j.N) + c
}

var _ Family = JuliaN{}

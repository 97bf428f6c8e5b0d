package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// complexValue is a pflag.Value for complex numbers. It accepts Go's "a+bi" as
// well as the "a+bj" spelling.
type complexValue complex128

func newComplexValue(val complex128, p *complex128) *complexValue {
	*p = val
	return (*complexValue)(p)
}

func (c *complexValue) Set(s string) error {
	v, err := parseComplex(s)
	if err != nil {
		return err
	}
	*c = complexValue(v)
	return nil
}

func (c *complexValue) Type() string {
	return "complex"
}

func (c *complexValue) String() string {
	v := complex128(*c)
	return fmt.Sprintf("%g%+gi", real(v), imag(v))
}

var _ pflag.Value = (*complexValue)(nil)

func parseComplex(s string) (complex128, error) {
	t := strings.TrimSpace(s)
	t = strings.Trim(t, "()")
	t = strings.ReplaceAll(t, " ", "")
	if strings.HasSuffix(t, "j") || strings.HasSuffix(t, "J") {
		t = t[:len(t)-1] + "i"
	}

	v, err := strconv.ParseComplex(t, 128)
	if err != nil {
		return 0, errors.Errorf("invalid complex number %q", s)
	}
	return v, nil
}

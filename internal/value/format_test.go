package value

import (
	"strings"
	"testing"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		opts Options
		want string
	}{
		{"integer", Real(42), Options{}, "42"},
		{"fraction", Real(3.14), Options{}, "3.14"},
		{"negative", Real(-0.5), Options{}, "-0.5"},
		{"zero", Real(0), Options{}, "0"},
		{"large without abbreviation", Real(1e6), Options{}, "1000000"},
		{"large with abbreviation", Real(1e6), Options{Abbreviate: true}, "1.000e+06"},
		{"abbreviation rounds", Real(2500000), Options{Abbreviate: true}, "2.500e+06"},
		{"below abbreviation threshold", Real(999999.5), Options{Abbreviate: true}, "999999.5"},
		{"negative abbreviated", Real(-1e6), Options{Abbreviate: true}, "-1.000e+06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.v, tt.opts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatHexadecimal(t *testing.T) {
	opts := Options{Base: Hexadecimal}

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"byte", Real(255), "0xFF"},
		{"zero", Real(0), "0x0"},
		{"letters", Real(26), "0x1A"},
		{"negative", Real(-255), "-0xFF"},
		{"fractional falls back", Real(3.5), "3.5 (hex: 0x3)"},
		{"negative fractional", Real(-3.5), "-3.5 (hex: -0x3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.v, opts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatBinary(t *testing.T) {
	opts := Options{Base: Binary}

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"byte", Real(255), "0b11111111"},
		{"small", Real(5), "0b101"},
		{"negative", Real(-5), "-0b101"},
		{"fractional falls back", Real(2.5), "2.5 (bin: 0b10)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.v, opts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatComplexRectangular(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		opts Options
		want string
	}{
		{"positive imaginary", Complex(3, 4), Options{}, "3 + 4i"},
		{"negative imaginary", Complex(3, -4), Options{}, "3 - 4i"},
		{"negative real", Complex(-1, 2), Options{}, "-1 + 2i"},
		{"zero imaginary", Complex(5, 0), Options{}, "5 + 0i"},
		{"hex components", Complex(3, 4), Options{Base: Hexadecimal}, "0x3 + 0x4i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.v, tt.opts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatComplexPolar(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		opts Options
		want string
	}{
		{"radians", Complex(2, 0), Options{Layout: Polar}, "2 ∠ 0rad"},
		{"degrees", Complex(2, 0), Options{Layout: Polar, Angle: Degrees}, "2 ∠ 0°"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.v, tt.opts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatComplexPolarShape(t *testing.T) {
	// Phase text depends on float printing, so only the shape is checked.
	got := Format(Complex(3, 4), Options{Layout: Polar, Angle: Degrees})
	if !strings.HasPrefix(got, "5 ∠ ") || !strings.HasSuffix(got, "°") {
		t.Errorf("Format() = %q, want magnitude 5 with a degree phase", got)
	}
}

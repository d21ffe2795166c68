package coil

import (
	"math"
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Unix(0, 0),
		time.Unix(1700000000, 123_000_000),
		time.Date(2031, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
	}
	for _, at := range times {
		want := float64(at.UnixNano()) / 1e9
		if got := DecodeTime(EncodeTime(at)); got != want {
			t.Errorf("DecodeTime(EncodeTime(%v)) = %v, want %v", at, got, want)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	tests := []struct {
		in  float64
		tol float64
	}{
		{in: 0, tol: 0},
		{in: 0.5, tol: 0}, // exactly representable in float32
		{in: 1, tol: 0},
		{in: -1, tol: 0},
		{in: -0.3, tol: 1e-7},
		{in: math.Sin(1700000000), tol: 1e-7},
	}
	for _, tt := range tests {
		got := DecodeValue(EncodeValue(tt.in))
		if math.Abs(got-tt.in) > tt.tol {
			t.Errorf("DecodeValue(EncodeValue(%v)) = %v, want within %v", tt.in, got, tt.tol)
		}
	}
}

func TestValueSignBitIsFirst(t *testing.T) {
	if EncodeValue(1)[0] {
		t.Error("sign bit set for a positive value")
	}
	if !EncodeValue(-1)[0] {
		t.Error("sign bit clear for a negative value")
	}
	for i, b := range EncodeValue(0) {
		if b {
			t.Errorf("EncodeValue(0) bit %d set, want all clear", i)
		}
	}
}

func TestStoreUnprimed(t *testing.T) {
	s := NewStore()
	if _, _, ok := s.Read(); ok {
		t.Error("Read() ok before the first Tick")
	}
}

func TestStoreTickThenRead(t *testing.T) {
	s := NewStore()
	now := time.Unix(1700000000, 250_000_000)
	s.Tick(now)

	x, y, ok := s.Read()
	if !ok {
		t.Fatal("Read() not ok after Tick")
	}
	wantX := float64(now.UnixNano()) / 1e9
	if x != wantX {
		t.Errorf("x = %v, want %v", x, wantX)
	}
	if math.Abs(y-math.Sin(wantX)) > 1e-6 {
		t.Errorf("y = %v, want sin(%v) = %v", y, wantX, math.Sin(wantX))
	}
}

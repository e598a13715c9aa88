package multiply

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/linalg"
	"github.com/agbru/decmul/internal/multiply/mocks"
	"github.com/golang/mock/gomock"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	registry := NewDefaultRegistry()

	t.Run("List", func(t *testing.T) {
		want := []string{KeyFFT, KeyKaratsuba, KeySchoolbook, KeyToomCook3}
		got := registry.List()
		for _, key := range want {
			if !registry.Has(key) {
				t.Errorf("registry should have %q, got %v", key, got)
			}
		}
		for i := 1; i < len(got); i++ {
			if got[i-1] > got[i] {
				t.Errorf("List is not sorted: %v", got)
			}
		}
	})

	t.Run("Get", func(t *testing.T) {
		m1, err := registry.Get(KeyKaratsuba)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		m2, err := registry.Get(KeyKaratsuba)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if m1 != m2 {
			t.Error("Get should return cached instance")
		}
		if _, err := registry.Get("nonexistent"); err == nil {
			t.Error("Get should fail for nonexistent algorithm")
		}
	})

	t.Run("Create", func(t *testing.T) {
		m1, err := registry.Create(KeyFFT)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		m2, _ := registry.Create(KeyFFT)
		if m1 == m2 {
			t.Error("Create should return a fresh instance")
		}
		if _, err := registry.Create("nonexistent"); err == nil {
			t.Error("Create should fail for nonexistent algorithm")
		}
	})

	t.Run("GetAll", func(t *testing.T) {
		all := registry.GetAll()
		if len(all) != len(registry.List()) {
			t.Errorf("GetAll returned %d multipliers for %d keys", len(all), len(registry.List()))
		}
	})
}

func TestRegisterReplacesCachedInstance(t *testing.T) {
	t.Parallel()
	registry := NewDefaultRegistry()
	before, _ := registry.Get(KeySchoolbook)
	registry.Register(KeySchoolbook, func(Options) coreMultiplier { return karatsubaCore{} })
	after, err := registry.Get(KeySchoolbook)
	if err != nil {
		t.Fatal(err)
	}
	if before == after || after.Name() != "Karatsuba" {
		t.Errorf("Register should drop the cached instance, got %q", after.Name())
	}
}

func TestRegistryOptionsReachToomCook(t *testing.T) {
	t.Parallel()
	registry := NewRegistry(Options{Inverter: linalg.LUInverter{}})
	m, err := registry.Get(KeyToomCook3)
	if err != nil {
		t.Fatal(err)
	}
	core := m.(*InstrumentedMultiplier).core.(toomCookCore)
	if !reflect.DeepEqual(core.tc.Inverter, linalg.LUInverter{}) {
		t.Errorf("toom3 inverter = %T, want linalg.LUInverter", core.tc.Inverter)
	}
	if got := m.(Bounded).MaxSafeDigits(); got != MaxSafeToomCookDigits {
		t.Errorf("MaxSafeDigits = %d, want %d", got, MaxSafeToomCookDigits)
	}
}

func TestInverterByName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		want    linalg.Inverter
		wantErr bool
	}{
		{"", linalg.ExactInverter{}, false},
		{InverterExact, linalg.ExactInverter{}, false},
		{InverterLU, linalg.LUInverter{}, false},
		{"cholesky", nil, true},
	}
	for _, tt := range tests {
		got, err := InverterByName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("InverterByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("InverterByName(%q) = %T, want %T", tt.name, got, tt.want)
		}
	}
}

func TestWithinBound(t *testing.T) {
	t.Parallel()
	short := bignum.MustParse("123")
	long := bignum.MustParse("1234567890123456789012")
	registry := NewDefaultRegistry()
	toom, _ := registry.Get(KeyToomCook3)
	kara, _ := registry.Get(KeyKaratsuba)
	fftm, _ := registry.Get(KeyFFT)

	if !WithinBound(toom, short, short) || WithinBound(toom, short, long) {
		t.Error("toom3 bound not applied to the longer operand")
	}
	if !WithinBound(kara, long, long) {
		t.Error("karatsuba is unbounded")
	}
	if !WithinBound(fftm, long, long) {
		t.Error("22 digits are far inside the FFT bound")
	}
	if got := fftm.(Bounded).MaxSafeDigits(); got != MaxSafeFFTDigits/2 {
		t.Errorf("FFT MaxSafeDigits = %d, want %d", got, MaxSafeFFTDigits/2)
	}
	atBound := bignum.MustParse(strings.Repeat("9", MaxSafeFFTDigits/2))
	pastBound := bignum.MustParse(strings.Repeat("9", MaxSafeFFTDigits/2+1))
	if !WithinBound(fftm, atBound, short) || WithinBound(fftm, pastBound, short) {
		t.Error("FFT bound must accept MaxSafeFFTDigits/2 digits and reject one more")
	}
	if got := kara.(Bounded).MaxSafeDigits(); got != 0 {
		t.Errorf("karatsuba MaxSafeDigits = %d, want 0", got)
	}
}

func TestInstrumentedMultiplier(t *testing.T) {
	t.Parallel()
	a, b := bignum.MustParse("-12"), bignum.MustParse("34")

	t.Run("Delegates", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		core := mocks.NewMockcoreMultiplier(ctrl)
		core.EXPECT().Name().Return("mock").AnyTimes()
		core.EXPECT().MultiplyCore(a, b).Return(bignum.MustParse("-408"), nil)

		m := NewMultiplier(core)
		got, err := m.Multiply(context.Background(), a, b)
		if err != nil || got.String() != "-408" {
			t.Errorf("Multiply = %s, %v", got, err)
		}
		if m.Name() != "mock" {
			t.Errorf("Name = %q, want mock", m.Name())
		}
	})

	t.Run("PropagatesErrors", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		core := mocks.NewMockcoreMultiplier(ctrl)
		core.EXPECT().Name().Return("mock").AnyTimes()
		core.EXPECT().MultiplyCore(gomock.Any(), gomock.Any()).Return(bignum.Zero, ErrSingularInterpolationMatrix)

		_, err := NewMultiplier(core).Multiply(context.Background(), a, b)
		if !errors.Is(err, ErrSingularInterpolationMatrix) {
			t.Errorf("error = %v, want ErrSingularInterpolationMatrix", err)
		}
	})

	t.Run("CanceledContext", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		core := mocks.NewMockcoreMultiplier(ctrl)
		core.EXPECT().MultiplyCore(gomock.Any(), gomock.Any()).Times(0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewMultiplier(core).Multiply(ctx, a, b)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("DeadlineStopsWaiting", func(t *testing.T) {
		t.Parallel()
		core := &blockingCore{release: make(chan struct{})}
		defer close(core.release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		start := time.Now()
		_, err := NewMultiplier(core).Multiply(ctx, a, b)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("error = %v, want context.DeadlineExceeded", err)
		}
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Errorf("Multiply returned after %v, want shortly after the deadline", elapsed)
		}
	})

	t.Run("NilCorePanics", func(t *testing.T) {
		t.Parallel()
		defer func() {
			if recover() == nil {
				t.Error("NewMultiplier(nil) should panic")
			}
		}()
		NewMultiplier(nil)
	})
}

// blockingCore does not return until release is closed.
type blockingCore struct {
	release chan struct{}
}

func (*blockingCore) Name() string { return "Blocking" }

func (c *blockingCore) MultiplyCore(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	<-c.release
	return a.Mul(b), nil
}

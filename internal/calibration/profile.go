// Package calibration measures, on the current machine, how far each bounded
// multiplication strategy stays exact, and persists the findings as a
// precision profile.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sys/cpu"
)

const (
	// CurrentProfileVersion is bumped on incompatible format changes.
	CurrentProfileVersion = 1

	DefaultProfileFileName = ".decmul_precision.json"
)

// Hardware identifies the floating-point environment a profile was
// recorded in. Fused multiply-add changes float64 rounding, so FMA and AVX2
// availability are part of it.
type Hardware struct {
	GOARCH  string `json:"goarch"`
	GOOS    string `json:"goos"`
	NumCPU  int    `json:"num_cpu"`
	HasFMA  bool   `json:"has_fma"`
	HasAVX2 bool   `json:"has_avx2"`
}

// CurrentHardware describes the running machine.
func CurrentHardware() Hardware {
	return Hardware{
		GOARCH: runtime.GOARCH,
		GOOS:   runtime.GOOS,
		NumCPU: runtime.NumCPU(),
		// arm64 always has fused multiply-add.
		HasFMA:  cpu.X86.HasFMA || runtime.GOARCH == "arm64",
		HasAVX2: cpu.X86.HasAVX2,
	}
}

// PrecisionProfile is the persisted result of a probe run.
type PrecisionProfile struct {
	Hardware
	GoVersion string `json:"go_version"`

	// Inverter is the Toom-Cook-3 inverter the probe ran with.
	Inverter      string `json:"inverter"`
	LinearLimit   int    `json:"linear_limit"`
	DoublingLimit int    `json:"doubling_limit"`

	Strategies []StrategyPrecision `json:"strategies"`

	ProbedAt       time.Time `json:"probed_at"`
	ProbeDuration  string    `json:"probe_duration"`
	ProfileVersion int       `json:"profile_version"`
}

// NewProfile returns an empty profile stamped with the current hardware.
func NewProfile(inverter string, opts ProbeOptions) *PrecisionProfile {
	return &PrecisionProfile{
		Hardware:       CurrentHardware(),
		GoVersion:      runtime.Version(),
		Inverter:       inverter,
		LinearLimit:    opts.LinearLimit,
		DoublingLimit:  opts.DoublingLimit,
		ProbedAt:       time.Now(),
		ProfileVersion: CurrentProfileVersion,
	}
}

// GetDefaultProfilePath returns ~/.decmul_precision.json, or the bare file
// name when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// LoadProfile reads a profile. An empty path selects the default.
func LoadProfile(path string) (*PrecisionProfile, error) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var profile PrecisionProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// Save writes the profile as indented JSON. The file is replaced atomically.
func (p *PrecisionProfile) Save(path string) error {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// IsValid reports whether the profile was recorded by this format version
// on hardware with the same floating-point behavior.
func (p *PrecisionProfile) IsValid() bool {
	if p == nil || p.ProfileVersion != CurrentProfileVersion {
		return false
	}
	return p.Hardware == CurrentHardware()
}

// Covers reports whether the profile answers a probe with the given
// inverter and limits.
func (p *PrecisionProfile) Covers(inverter string, opts ProbeOptions) bool {
	return p != nil &&
		p.Inverter == inverter &&
		p.LinearLimit == opts.LinearLimit &&
		p.DoublingLimit == opts.DoublingLimit
}

// Unsafe returns the strategies found inexact within their documented bound.
func (p *PrecisionProfile) Unsafe() []StrategyPrecision {
	var out []StrategyPrecision
	for _, s := range p.Strategies {
		if s.Unsafe() {
			out = append(out, s)
		}
	}
	return out
}

func (p *PrecisionProfile) String() string {
	if p == nil {
		return "<nil profile>"
	}
	return fmt.Sprintf("PrecisionProfile{%s/%s, %d CPUs, FMA: %t, strategies: %d, probed: %s}",
		p.GOOS, p.GOARCH, p.NumCPU, p.HasFMA, len(p.Strategies), p.ProbedAt.Format(time.RFC3339))
}

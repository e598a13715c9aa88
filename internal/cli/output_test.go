package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/testutil"
	"github.com/agbru/decmul/pkg/models"
)

var (
	outA       = bignum.MustParse("-987654321")
	outB       = bignum.MustParse("123456789")
	outProduct = bignum.MustParse("-121932631112635269")
)

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	t.Run("writes header and product", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(tmpDir, "nested", "dir", "product.txt")
		if err := WriteResultToFile(outProduct, outA, outB, time.Second, "Toom-Cook-3", OutputConfig{OutputFile: path}); err != nil {
			t.Fatalf("WriteResultToFile: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output file: %v", err)
		}
		for _, want := range []string{"# Algorithm: Toom-Cook-3", "# Operand digits: 9 x 9", "# Product digits: 18", "a x b =\n-121932631112635269\n"} {
			if !strings.Contains(string(content), want) {
				t.Errorf("file lacks %q:\n%s", want, content)
			}
		}
	})

	t.Run("empty path writes nothing", func(t *testing.T) {
		t.Parallel()
		if err := WriteResultToFile(outProduct, outA, outB, 0, "FFT", OutputConfig{}); err != nil {
			t.Errorf("unexpected error %v", err)
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		t.Parallel()
		blocker := filepath.Join(tmpDir, "blocker")
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		err := WriteResultToFile(outProduct, outA, outB, 0, "FFT", OutputConfig{OutputFile: filepath.Join(blocker, "x.txt")})
		if err == nil {
			t.Error("expected an error when the parent is a file")
		}
	})
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	tests := []struct {
		name     string
		config   OutputConfig
		contains []string
		exact    string
	}{
		{name: "quiet", config: OutputConfig{Quiet: true}, exact: "-121932631112635269\n"},
		{name: "standard", config: OutputConfig{}, contains: []string{"a x b = -121,932,631,112,635,269"}},
		{name: "with file", config: OutputConfig{OutputFile: filepath.Join(tmpDir, "p.txt")}, contains: []string{"Result saved to:"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := DisplayResultWithConfig(&buf, outProduct, outA, outB, time.Millisecond, "Karatsuba", tt.config); err != nil {
				t.Fatalf("DisplayResultWithConfig: %v", err)
			}
			out := testutil.StripAnsiCodes(buf.String())
			if tt.exact != "" && out != tt.exact {
				t.Errorf("got %q, want %q", out, tt.exact)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output lacks %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestWriteJSONResults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	in := []models.StrategyResult{
		{Algorithm: "Karatsuba", Product: "6", DurationNS: 10, WithinBound: true},
		{Algorithm: "Toom-Cook-3", Product: "6", MaxSafeDigits: 21, WithinBound: true},
	}
	if err := WriteJSONResults(&buf, in); err != nil {
		t.Fatal(err)
	}
	var got []models.StrategyResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(got) != 2 || got[1].MaxSafeDigits != 21 || got[0].Product != "6" {
		t.Errorf("unexpected decoded results %+v", got)
	}
}

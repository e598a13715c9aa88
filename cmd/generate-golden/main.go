package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	A       string `json:"a"`
	B       string `json:"b"`
	Product string `json:"product"`
}

func main() {
	outputDir := flag.String("out", "internal/multiply/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "products_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Interesting shapes:
	// - single digits and unbalanced operands
	// - lengths around the Toom-Cook bound (21/22 digits)
	// - a few hundred to a thousand digits for Karatsuba and FFT
	shapes := [][2]int{
		{1, 1}, {1, 7}, {2, 2}, {3, 5}, {8, 8}, {13, 11}, {21, 21}, {22, 22},
		{30, 17}, {55, 55}, {89, 40}, {144, 144}, {377, 250}, {610, 610}, {1000, 999},
	}

	data := []GoldenData{
		golden("0", "123456789"),
		golden("1", "-987654321"),
		golden(strings.Repeat("9", 21), strings.Repeat("9", 21)),
		golden(strings.Repeat("9", 64), "-"+strings.Repeat("9", 64)),
	}

	fmt.Println("Generating golden data...")

	for i, shape := range shapes {
		a := patternOperand(shape[0], i)
		b := patternOperand(shape[1], i+len(shapes))
		if i%3 == 1 {
			a = "-" + a
		}
		if i%4 == 2 {
			b = "-" + b
		}
		data = append(data, golden(a, b))
		fmt.Printf("Generated %d x %d digits\n", shape[0], shape[1])
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// patternOperand returns an n-digit magnitude whose digits follow a fixed
// quadratic pattern, so the file is reproducible without a random source.
func patternOperand(n, seed int) string {
	var sb strings.Builder
	sb.Grow(n)
	for k := 0; k < n; k++ {
		d := (seed*31 + k*k*7 + k*3 + 1) % 10
		if k == 0 && d == 0 {
			d = 9
		}
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

// golden computes the product with math/big, which serves as our "Oracle".
func golden(a, b string) GoldenData {
	x, ok := new(big.Int).SetString(a, 10)
	if !ok {
		panic("invalid operand " + a)
	}
	y, ok := new(big.Int).SetString(b, 10)
	if !ok {
		panic("invalid operand " + b)
	}
	return GoldenData{A: a, B: b, Product: new(big.Int).Mul(x, y).String()}
}

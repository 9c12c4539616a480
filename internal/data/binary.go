package data

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// LoadInt32s reads a file of little-endian int32 values with no header.
func LoadInt32s(path string) ([]int32, error) {
	raw, err := readWords(path)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(raw))
	for i, w := range raw {
		out[i] = int32(w)
	}
	return out, nil
}

// LoadFloat32s reads a file of little-endian IEEE-754 float32 values.
func LoadFloat32s(path string) ([]float32, error) {
	raw, err := readWords(path)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(raw))
	for i, w := range raw {
		out[i] = math.Float32frombits(w)
	}
	return out, nil
}

func readWords(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%s: size %d is not a multiple of 4", path, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return words, nil
}

// WriteInt32s and WriteFloat32s produce the format the loaders read.
func WriteInt32s(w io.Writer, values []int32) error {
	return binary.Write(w, binary.LittleEndian, values)
}

func WriteFloat32s(w io.Writer, values []float32) error {
	return binary.Write(w, binary.LittleEndian, values)
}

// Package testutils generates well formed powers-of-tau files for tests,
// built from the BN254 generators and a test-chosen τ so that every point
// is on its curve and index 0 holds the generator.
package testutils

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Byte offsets inside files produced by PtauBytes, for tests that corrupt
// specific fields: the magic string and preamble span bytes 0..11, the
// header section entry follows, its payload holding n8 then the modulus.
const (
	ModulusOffset   = 28
	G1PayloadOffset = 80
)

// PtauBytes returns a well formed version-1 ptau file for the given power,
// holding the full 2*2^power-1 G1 and 2^power G2 powers of tau.
func PtauBytes(power uint32, tau int64) []byte {
	g1Points, g2Points := Points(power, tau)
	var buf bytes.Buffer
	buf.Write(Preamble(11))
	AppendSection(&buf, 1, HeaderPayload(power))
	AppendSection(&buf, 2, G1Payload(g1Points))
	AppendSection(&buf, 3, G2Payload(g2Points))
	for id := uint32(4); id <= 11; id++ {
		AppendSection(&buf, id, nil)
	}
	return buf.Bytes()
}

// Points returns the 2*2^power-1 G1 and 2^power G2 powers of tau, i.e.
// [τ^i]G1 and [τ^i]G2 for increasing i, starting from the generators.
func Points(power uint32, tau int64) ([]bn254.G1Affine, []bn254.G2Affine) {
	numG2 := 1 << power
	numG1 := 2*numG2 - 1
	_, _, g1Gen, g2Gen := bn254.Generators()

	g1Points := make([]bn254.G1Affine, numG1)
	g2Points := make([]bn254.G2Affine, numG2)
	t := big.NewInt(tau)
	k := big.NewInt(1)
	for i := range g1Points {
		g1Points[i].ScalarMultiplication(&g1Gen, k)
		if i < numG2 {
			g2Points[i].ScalarMultiplication(&g2Gen, k)
		}
		k.Mul(k, t).Mod(k, fr.Modulus())
	}
	return g1Points, g2Points
}

// Preamble returns the 12-byte file preamble: magic string, version 1,
// and the given section count.
func Preamble(numSections uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("ptau")
	writeULE32(&buf, 1)
	writeULE32(&buf, numSections)
	return buf.Bytes()
}

// AppendSection appends a section directory entry (id and length) followed
// by its payload.
func AppendSection(buf *bytes.Buffer, id uint32, payload []byte) {
	writeULE32(buf, id)
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(payload)))
	buf.Write(size[:])
	buf.Write(payload)
}

// HeaderPayload returns a section 1 payload declaring the BN254 base field
// modulus and the given power. The ceremony power is set to power+1 as if
// the file had been truncated from a larger ceremony.
func HeaderPayload(power uint32) []byte {
	var buf bytes.Buffer
	writeULE32(&buf, fp.Bytes)
	buf.Write(reverseBytes(fp.Modulus().FillBytes(make([]byte, fp.Bytes))))
	writeULE32(&buf, power)
	writeULE32(&buf, power+1)
	return buf.Bytes()
}

// G1Payload encodes points as section 2 records.
func G1Payload(points []bn254.G1Affine) []byte {
	var buf bytes.Buffer
	for i := range points {
		buf.Write(ElementBytes(&points[i].X))
		buf.Write(ElementBytes(&points[i].Y))
	}
	return buf.Bytes()
}

// G2Payload encodes points as section 3 records.
func G2Payload(points []bn254.G2Affine) []byte {
	var buf bytes.Buffer
	for i := range points {
		buf.Write(ElementBytes(&points[i].X.A0))
		buf.Write(ElementBytes(&points[i].X.A1))
		buf.Write(ElementBytes(&points[i].Y.A0))
		buf.Write(ElementBytes(&points[i].Y.A1))
	}
	return buf.Bytes()
}

// ElementBytes encodes a base field element the way the file stores it:
// the Montgomery form limbs in little-endian order.
func ElementBytes(e *fp.Element) []byte {
	buf := make([]byte, fp.Bytes)
	binary.LittleEndian.PutUint64(buf[0:8], e[0])
	binary.LittleEndian.PutUint64(buf[8:16], e[1])
	binary.LittleEndian.PutUint64(buf[16:24], e[2])
	binary.LittleEndian.PutUint64(buf[24:32], e[3])
	return buf
}

// TempPtau writes data to a file in a test temp dir and returns its path.
func TempPtau(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ptau")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("error writing ptau fixture: %v", err)
	}
	return path
}

func writeULE32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func reverseBytes(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}

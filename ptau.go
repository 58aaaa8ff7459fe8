package ptau

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

const (
	magicString = "ptau"
	version     = 1
	numSections = 11

	headerSection = 1
	g1Section     = 2
	g2Section     = 3

	// maxPower is the largest power snarkjs ceremonies produce; beyond it
	// the point count arithmetic would overflow anyway.
	maxPower = 28
)

// Header holds the field parameters declared by the header section of a
// ptau file.
type Header struct {
	// N8 is the byte width of a base field element, 32 for BN254.
	N8 uint32
	// Power sets how many points the file carries: 2^Power G2 powers and
	// 2*2^Power-1 G1 powers.
	Power uint32
	// CeremonyPower is the power of the ceremony the file was derived
	// from, at least Power. It is recorded as declared, not validated.
	CeremonyPower uint32
}

// MaxG2Points returns the number of G2 powers the file carries.
func (h Header) MaxG2Points() int { return 1 << h.Power }

// MaxG1Points returns the number of G1 powers the file carries.
func (h Header) MaxG1Points() int { return 2*h.MaxG2Points() - 1 }

// File is an open ptau file with a validated preamble and header.
// It is not safe for concurrent use; decode sections from one goroutine.
type File struct {
	Header Header

	f        *os.File
	sections map[uint32]int64
}

// Read decodes numG1Points G1 powers and numG2Points G2 powers from the
// ptau file at path. The returned slices follow the on-disk order, so
// index 0 holds [τ⁰]G, the group generator. Every point is checked to lie
// on its curve; on any validation failure Read returns a typed error and
// no points.
func Read(path string, numG1Points, numG2Points int) (
	[]bn254.G1Affine, []bn254.G2Affine, error) {

	f, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if numG1Points > f.Header.MaxG1Points() {
		return nil, nil, fmt.Errorf("%w: requested %d, file has %d",
			ErrInvalidNumG1Points, numG1Points, f.Header.MaxG1Points())
	}
	if numG2Points > f.Header.MaxG2Points() {
		return nil, nil, fmt.Errorf("%w: requested %d, file has %d",
			ErrInvalidNumG2Points, numG2Points, f.Header.MaxG2Points())
	}

	g1Points, err := f.G1Points(numG1Points)
	if err != nil {
		return nil, nil, err
	}
	g2Points, err := f.G2Points(numG2Points)
	if err != nil {
		return nil, nil, err
	}
	return g1Points, g2Points, nil
}

// Open opens the ptau file at path, builds its section directory, and
// validates the header section. The caller must Close the returned File.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening ptau file: %w", err)
	}
	pf := &File{f: f}
	if err := pf.readSections(); err != nil {
		f.Close()
		return nil, err
	}
	if err := pf.readHeader(); err != nil {
		f.Close()
		return nil, err
	}
	return pf, nil
}

// Close closes the underlying file.
func (pf *File) Close() error {
	return pf.f.Close()
}

// readSections validates the magic string, version and section count, then
// walks the section directory recording each section's payload offset.
// Section payloads are skipped, not read.
func (pf *File) readSections() error {
	var tag [4]byte
	if _, err := io.ReadFull(pf.f, tag[:]); err != nil {
		return readErr(err)
	}
	if string(tag[:]) != magicString {
		return fmt.Errorf("%w: %q", ErrInvalidMagicString, tag[:])
	}

	v, err := readULE32(pf.f)
	if err != nil {
		return err
	}
	if v != version {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, v)
	}

	n, err := readULE32(pf.f)
	if err != nil {
		return err
	}
	if n != numSections {
		return fmt.Errorf("%w: %d", ErrInvalidNumSections, n)
	}

	pf.sections = make(map[uint32]int64, n)
	for i := uint32(0); i < n; i++ {
		id, err := readULE32(pf.f)
		if err != nil {
			return err
		}
		size, err := readILE64(pf.f)
		if err != nil {
			return err
		}
		pos, err := pf.f.Seek(0, io.SeekCurrent)
		if err != nil {
			return fmt.Errorf("error reading section directory: %w", err)
		}
		// a duplicate id overwrites the earlier entry, as snarkjs does
		pf.sections[id] = pos
		if _, err := pf.f.Seek(size, io.SeekCurrent); err != nil {
			return fmt.Errorf("error skipping section %d: %w", id, err)
		}
	}
	return nil
}

// readHeader reads the field parameters from the header section and
// checks the declared modulus is the BN254 base field modulus.
func (pf *File) readHeader() error {
	if err := pf.seekSection(headerSection); err != nil {
		return err
	}
	n8, err := readULE32(pf.f)
	if err != nil {
		return err
	}
	q := make([]byte, n8)
	if _, err := io.ReadFull(pf.f, q); err != nil {
		return readErr(err)
	}

	// 32 zero bytes is the snarkjs sentinel for an unset modulus
	numZeroes := 0
	for _, b := range q {
		if b == 0 {
			numZeroes++
		}
	}
	if numZeroes == fp.Bytes {
		return fmt.Errorf("%w: modulus not set", ErrInvalidPrimeOrder)
	}

	// the declared modulus must reduce to zero mod q, i.e. literally be
	// the BN254 base field modulus
	declared := new(big.Int).SetBytes(reverseBytes(q))
	if declared.Mod(declared, fp.Modulus()).Sign() != 0 {
		return fmt.Errorf("%w: declared modulus is not the BN254 base "+
			"field modulus", ErrInvalidPrimeOrder)
	}

	power, err := readULE32(pf.f)
	if err != nil {
		return err
	}
	if power > maxPower {
		return fmt.Errorf("%w: %d, at most %d supported", ErrInvalidPower,
			power, maxPower)
	}
	ceremonyPower, err := readULE32(pf.f)
	if err != nil {
		return err
	}

	pf.Header = Header{N8: n8, Power: power, CeremonyPower: ceremonyPower}
	return nil
}

// G1Points decodes the first n points of the G1 section, validating each
// lies on the curve. The first point failing validation aborts the decode
// with no partial result.
func (pf *File) G1Points(n int) ([]bn254.G1Affine, error) {
	if n < 0 || n > pf.Header.MaxG1Points() {
		return nil, fmt.Errorf("%w: requested %d, file has %d",
			ErrInvalidNumG1Points, n, pf.Header.MaxG1Points())
	}
	if err := pf.seekSection(g1Section); err != nil {
		return nil, err
	}
	points := make([]bn254.G1Affine, n)
	for i := range points {
		if err := readG1(pf.f, &points[i]); err != nil {
			return nil, err
		}
		// the format has no encoding for the point at infinity, but
		// IsOnCurve accepts (0, 0) as one, so rule it out explicitly
		if points[i].IsInfinity() || !points[i].IsOnCurve() {
			return nil, fmt.Errorf("%w: point %d with x: %s, y: %s",
				ErrInvalidG1Point, i, points[i].X.String(), points[i].Y.String())
		}
	}
	return points, nil
}

// G2Points decodes the first n points of the G2 section, validating each
// lies on the twisted curve. The first point failing validation aborts
// the decode with no partial result.
func (pf *File) G2Points(n int) ([]bn254.G2Affine, error) {
	if n < 0 || n > pf.Header.MaxG2Points() {
		return nil, fmt.Errorf("%w: requested %d, file has %d",
			ErrInvalidNumG2Points, n, pf.Header.MaxG2Points())
	}
	if err := pf.seekSection(g2Section); err != nil {
		return nil, err
	}
	points := make([]bn254.G2Affine, n)
	for i := range points {
		if err := readG2(pf.f, &points[i]); err != nil {
			return nil, err
		}
		if points[i].IsInfinity() || !points[i].IsOnCurve() {
			return nil, fmt.Errorf("%w: point %d", ErrInvalidG2Point, i)
		}
	}
	return points, nil
}

// seekSection positions the file at the payload of the given section.
func (pf *File) seekSection(id uint32) error {
	pos, ok := pf.sections[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrMissingSection, id)
	}
	if _, err := pf.f.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("error seeking to section %d: %w", id, err)
	}
	return nil
}

// reverseBytes returns b in reversed order, converting between the file's
// little-endian integers and big.Int's big-endian expectation.
func reverseBytes(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}

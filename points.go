package ptau

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// readG1 reads one 64-byte G1 record: the x then y coordinate, each a
// base field element.
func readG1(r io.Reader, p *bn254.G1Affine) error {
	if err := readElement(r, &p.X); err != nil {
		return err
	}
	return readElement(r, &p.Y)
}

// readG2 reads one 128-byte G2 record: four base field elements forming
// the extension field coordinates x = x0 + x1·u and y = y0 + y1·u.
func readG2(r io.Reader, p *bn254.G2Affine) error {
	if err := readElement(r, &p.X.A0); err != nil {
		return err
	}
	if err := readElement(r, &p.X.A1); err != nil {
		return err
	}
	if err := readElement(r, &p.Y.A0); err != nil {
		return err
	}
	return readElement(r, &p.Y.A1)
}

// readElement reads a base field element as 32 little-endian bytes.
// The file stores coordinates in Montgomery form, fp.Element's internal
// representation, so the limbs are loaded verbatim.
func readElement(r io.Reader, z *fp.Element) error {
	var buf [fp.Bytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return readErr(err)
	}
	z[0] = binary.LittleEndian.Uint64(buf[0:8])
	z[1] = binary.LittleEndian.Uint64(buf[8:16])
	z[2] = binary.LittleEndian.Uint64(buf[16:24])
	z[3] = binary.LittleEndian.Uint64(buf[24:32])
	return nil
}

// readULE32 reads a little-endian uint32.
func readULE32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, readErr(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// readILE64 reads a little-endian int64, the section length type.
func readILE64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, readErr(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// readErr maps short reads to ErrTruncated and passes other I/O errors
// through wrapped.
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return fmt.Errorf("error reading ptau file: %w", err)
}

package setup

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	kzg_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"

	ptau "github.com/snarkhq/go-ptau"
)

// Run sets up a plonk system over the BN254 trusted parameters in the
// ptau file at ptauPath. The file must carry enough powers for the
// circuit's gate count.
func Run(ccs constraint.ConstraintSystem, ptauPath string) (
	plonk.ProvingKey, plonk.VerifyingKey, error) {

	numGates := uint64(ccs.GetNbConstraints() + ccs.GetNbPublicVariables())
	numGates = ecc.NextPowerOfTwo(numGates)

	srs, err := SRS(ptauPath, numGates+5)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating SRS: %v", err)
	}

	return plonk.Setup(ccs, srs)
}

// SRS assembles a BN254 KZG structured reference string of the given size
// from the powers of tau in the ptau file at ptauPath.
func SRS(ptauPath string, size uint64) (*kzg_bn254.SRS, error) {
	if size < 2 {
		return nil, fmt.Errorf("size must be at least 2")
	}

	g1Points, g2Points, err := ptau.Read(ptauPath, int(size), 2)
	if err != nil {
		return nil, fmt.Errorf("error reading ptau file %s: %w", ptauPath, err)
	}

	var srs kzg_bn254.SRS
	srs.Pk.G1 = g1Points
	srs.Vk.G1 = g1Points[0]
	srs.Vk.G2[0] = g2Points[0]
	srs.Vk.G2[1] = g2Points[1]

	return &srs, nil
}

/*
Package ptau reads "powers of tau" trusted setup files into BN254 curve
points.

A ptau file is the binary artifact of a distributed powers-of-tau ceremony
as run by snarkjs and the perpetual powers-of-tau project
(https://github.com/privacy-scaling-explorations/perpetualpowersoftau).
It holds the powers [τ⁰]G₁ ... [τ^(2n-2)]G₁ and [τ⁰]G₂ ... [τ^(n-1)]G₂,
where n = 2^power for the ceremony's declared power. These points are the
shared security parameters needed to set up pairing-based zkp protocols
such as plonk; the ceremony guarantees security as long as at least one
participant was honest.

The file is a sequence of length-prefixed sections. This package reads the
three sections every ptau file carries: the header (field parameters and
ceremony power), the G1 powers, and the G2 powers. Every decoded point is
checked to lie on its curve before it is returned; a file that fails any
validation yields a typed error and no points at all.

Use Read for one-shot decoding, or Open to inspect the header and decode
the two point sections separately. The setup subpackage turns the decoded
points into a gnark KZG SRS and runs plonk setups with them.
*/
package ptau

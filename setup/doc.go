/*
package setup turns powers-of-tau files into gnark proving material for the
BN254 curve.

Source of the trusted parameters
====================================================================================================
To secure the plonk protocol we need shared security parameters between Prover and Verifier.
The creation of these parameters requires a "trusted setup" procedure, so called because it is
critical to run the procedure correctly to ensure the security of proof verifications.

To make the risk of a dishonest setup statistically insignificant, a distributed, permissionless,
setup ceremony, open to everyone, can be run. The ceremony guarantees security as long as at least
one participant is honest. In fact, all the participants would need to collude together to act
maliciously.

For the BN254 curve, the battle tested perpetual "powers-of-tau" ceremony used by projects such as
Semaphore, Hermez, Tornado Cash and snarkjs distributes its parameters as ptau files, which this
package consumes. The ceremony provides parameters that can support circuits up to 2^27 (128M)
constraints; smaller ptau files truncated from it work as well, as long as they carry enough
powers for the circuit at hand.

Learn more about the ceremony here:
https://github.com/privacy-scaling-explorations/perpetualpowersoftau

The ptau files themselves are untrusted input: every point they declare is validated to lie on
its curve before it becomes part of an SRS.
*/
package setup

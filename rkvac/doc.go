/*
Package rkvac implements the user (prover) side of an anonymous
attribute-based credential protocol with revocation, in the style of the
Camenisch-Lysyanskaya family with a pairing-based signature-of-knowledge.

A user holds a set of attributes certified by an issuer and a revocation
handle certified by a revocation authority. On demand from a verifier, the
user produces a randomized credential together with a non-interactive
zero-knowledge proof that it knows a valid issuer signature over its
attributes, that the undisclosed attributes stay hidden while the disclosed
ones are revealed, that it has not been revoked in the current epoch, and
that its identifier is bound to two revocation-authority randomizers chosen
by the verifier.

The package computes the proof only. Key generation, credential issuance,
revocation-authority setup, and proof verification are out of scope and
belong to other parties in the protocol.

Usage:

    attrs := rkvac.NewUserAttributes(values)
    cred, proof, err := rkvac.ComputeProofOfKnowledge(
        sys, raParams, raSig, issuerSig,
        i, ii, nonce, epoch, attrs, numDisclosed, rand.Reader,
    )

The underlying curve is BLS12-381 via gnark-crypto; only G1 is used, since
the prover never evaluates a pairing.
*/
package rkvac

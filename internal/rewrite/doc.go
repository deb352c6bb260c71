// Package rewrite implements the deterministic constructed-language
// rewrite pipeline.
//
// The pipeline runs five ordered stages over one input sentence:
//
//  1. Protect: quoted spans and configured literal phrases are pulled
//     into a protected-span arena and replaced by span references.
//  2. Reduce: stop words and/or every Nth surviving word are removed.
//  3. Reorder: word pairs are swapped at a fixed stride.
//  4. Transform: a seeded phonological rewrite of the remaining words.
//  5. Restore: span references are resolved back to their original
//     text and whitespace is normalised.
//
// Stages 2-4 operate over a sequence of typed tokens (plain words or
// span references) rather than sentinel marker strings, so no input
// text can collide with internal bookkeeping. The whole pipeline is a
// pure function of (input, config, seed): the only randomness comes
// from a random source seeded per call, consumed in strict
// left-to-right order, which makes output byte-for-byte reproducible.
package rewrite

// Package synth provides implementations of the Synthesizer interface
// for the supported text-to-speech engines. Each engine knows how to
// drive one external TTS tool (espeak-ng, macOS say).
//
// Engines are registered with the Registry at startup.
package synth

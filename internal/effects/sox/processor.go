// Package sox applies the voice-character effects chain with external
// tools: rubberband for formant-preserved pitch shift and tempo, sox for
// grit, chorus and EQ.
package sox

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/logger"
)

// Ensure Processor implements the interface.
var _ driven.EffectsProcessor = (*Processor)(nil)

// minChorusMS is the smallest chorus delay sox accepts. Configured
// values below it are clamped up rather than rejected.
const minChorusMS = 20

// Processor runs the rubberband + sox effects chain.
type Processor struct {
	lookPath func(string) (string, error)
}

// New creates an effects processor.
func New() *Processor {
	return &Processor{lookPath: exec.LookPath}
}

// Validate checks the required external tools are installed.
func (p *Processor) Validate() error {
	if _, err := p.lookPath("rubberband"); err != nil {
		return fmt.Errorf("%w: rubberband", domain.ErrToolMissing)
	}
	if _, err := p.lookPath("sox"); err != nil {
		return fmt.Errorf("%w: sox", domain.ErrToolMissing)
	}
	return nil
}

// Process reads inPath, applies the chain described by settings and
// writes the result to outPath. The pitch-shifted intermediate lands
// next to the input and is removed before returning.
func (p *Processor) Process(ctx context.Context, inPath, outPath string, settings domain.EffectsSettings) error {
	if err := p.Validate(); err != nil {
		return err
	}

	tmp := pitchPath(inPath)
	defer os.Remove(tmp)

	rbArgs := rubberbandArgs(inPath, tmp, settings)
	logger.Debug("Running rubberband %v", rbArgs)
	if out, err := exec.CommandContext(ctx, "rubberband", rbArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("rubberband failed: %w: %s", err, out)
	}

	sxArgs := soxArgs(tmp, outPath, settings)
	logger.Debug("Running sox %v", sxArgs)
	if out, err := exec.CommandContext(ctx, "sox", sxArgs...).CombinedOutput(); err != nil {
		return fmt.Errorf("sox failed: %w: %s", err, out)
	}
	return nil
}

// pitchPath returns the intermediate path for the pitch-shifted WAV.
func pitchPath(inPath string) string {
	base := strings.TrimSuffix(inPath, ".wav")
	return base + ".pitch.wav"
}

// rubberbandArgs builds the pitch/tempo stage: shift by semitones with
// formants preserved (-F), stretch to the configured tempo.
func rubberbandArgs(inPath, outPath string, settings domain.EffectsSettings) []string {
	return []string{
		"-t", strconv.FormatFloat(settings.Tempo, 'g', -1, 64),
		"-p", strconv.Itoa(settings.Semitones),
		"-F",
		"--quiet",
		inPath,
		outPath,
	}
}

// soxArgs builds the grit/chorus/EQ stage. Grit is skipped entirely when
// GritDrive is 0 for a cleaner, more natural sound.
func soxArgs(inPath, outPath string, settings domain.EffectsSettings) []string {
	args := []string{inPath, outPath}

	if settings.GritDrive > 0 {
		switch settings.GritMode {
		case domain.GritModeOverdrive:
			args = append(args, "overdrive",
				strconv.Itoa(settings.GritDrive), strconv.Itoa(settings.GritColor))
		case domain.GritModeCompression:
			args = append(args, "compand", "0.01,0.1", "-60,-50,-10")
		case domain.GritModeEQ:
			boost := min(settings.GritDrive, 8)
			args = append(args, "equalizer", "2500", "1000q", "+"+strconv.Itoa(boost))
		case domain.GritModeCombo:
			args = append(args, "compand", "0.01,0.1", "-60,-50,-10")
			boost := min(settings.GritDrive, 6)
			args = append(args, "equalizer", "2500", "1000q", "+"+strconv.Itoa(boost))
		}
	}

	if settings.ChorusMS > 0 {
		effective := max(minChorusMS, settings.ChorusMS)
		args = append(args, "chorus", "0.6", "0.9", strconv.Itoa(effective),
			"0.4", "0.25", "2", "-t")
	}

	// Warm up the low end, soften the top, and leave headroom.
	args = append(args, "bass", "+3", "treble", "-2", "gain", "-4")

	return args
}

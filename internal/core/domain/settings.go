package domain

const unknownDescription = "Unknown"

// GritMode selects how the effects chain adds grit to the voice.
type GritMode string

// Available grit modes.
const (
	// GritModeOverdrive is classic distortion. Creates harmonics and a
	// slightly doubled quality.
	GritModeOverdrive GritMode = "overdrive"

	// GritModeCompression adds punch without harmonics.
	GritModeCompression GritMode = "compression"

	// GritModeEQ boosts the mid-range for presence and edge.
	GritModeEQ GritMode = "eq"

	// GritModeCombo is compression plus EQ: gravelly without doubling.
	GritModeCombo GritMode = "combo"
)

// IsValid returns true if the grit mode is recognised.
func (m GritMode) IsValid() bool {
	switch m {
	case GritModeOverdrive, GritModeCompression, GritModeEQ, GritModeCombo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m GritMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m GritMode) Description() string {
	switch m {
	case GritModeOverdrive:
		return "Overdrive (classic distortion, doubled)"
	case GritModeCompression:
		return "Compression (punch without harmonics)"
	case GritModeEQ:
		return "EQ (mid-range presence boost)"
	case GritModeCombo:
		return "Combo (compression + EQ, gravelly)"
	default:
		return unknownDescription
	}
}

// AllGritModes returns all available grit modes.
func AllGritModes() []GritMode {
	return []GritMode{
		GritModeOverdrive,
		GritModeCompression,
		GritModeEQ,
		GritModeCombo,
	}
}

// EffectsSettings holds the audio post-processing configuration applied
// after synthesis. All work is delegated to external tools (rubberband
// and sox); these values are their knobs.
type EffectsSettings struct {
	// Semitones is the pitch shift, formant-preserved. Negative is down.
	Semitones int

	// GritDrive is the grit intensity, 0 (off) to 10.
	GritDrive int

	// GritColor is the grit colour/tone passed to overdrive.
	GritColor int

	// GritMode selects how grit is produced.
	GritMode GritMode

	// ChorusMS is the chorus delay in milliseconds. 0 disables chorus.
	// sox requires a delay of at least 20ms; smaller values are clamped.
	ChorusMS int

	// Tempo is the speed multiplier. 1.0 is normal, 0.9 slightly slower.
	Tempo float64
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Engine is the synthesis engine identifier (e.g. "espeak", "say").
	Engine string

	// Voice is the engine-specific voice name. Empty means the engine
	// default.
	Voice string

	// Rewrite holds the rewrite pipeline configuration.
	Rewrite RewriteConfig

	// Effects holds the audio effects chain configuration.
	Effects EffectsSettings

	// PlayerCommand optionally overrides the playback binary. Empty
	// means autodetect (afplay, paplay, aplay, ffplay).
	PlayerCommand string
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Engine:  "espeak",
		Rewrite: DefaultRewriteConfig(),
		Effects: EffectsSettings{
			Semitones: -2,
			GritDrive: 0,
			GritColor: 10,
			GritMode:  GritModeCombo,
			ChorusMS:  0,
			Tempo:     0.9,
		},
	}
}

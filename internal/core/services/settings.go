package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gravelworks/grumble-cli/internal/core/domain"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driven"
	"github.com/gravelworks/grumble-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEngine         = "synth.engine"
	keyVoice          = "synth.voice"
	keyRewriteSeed    = "rewrite.seed"
	keyRewriteStop    = "rewrite.strip_stop_words"
	keyRewriteNth     = "rewrite.strip_every_nth"
	keyRewritePhrases = "rewrite.literal_phrases"
	keyFxSemitones    = "effects.semitones"
	keyFxGritDrive    = "effects.grit_drive"
	keyFxGritColor    = "effects.grit_color"
	keyFxGritMode     = "effects.grit_mode"
	keyFxChorusMS     = "effects.chorus_ms"
	keyFxTempo        = "effects.tempo"
	keyPlayerCommand  = "player.command"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, with defaults applied for
// anything not configured.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Engine: s.getString(keyEngine, defaults.Engine),
		Voice:  s.configStore.GetString(keyVoice), // No default - empty selects the engine voice
		Rewrite: domain.RewriteConfig{
			Seed:           int64(s.getInt(keyRewriteSeed, int(defaults.Rewrite.Seed))),
			StripStopWords: s.getBool(keyRewriteStop, defaults.Rewrite.StripStopWords),
			StripEveryNth:  s.getInt(keyRewriteNth, defaults.Rewrite.StripEveryNth),
			LiteralPhrases: s.configStore.GetStringSlice(keyRewritePhrases),
		},
		Effects: domain.EffectsSettings{
			Semitones: s.getInt(keyFxSemitones, defaults.Effects.Semitones),
			GritDrive: s.getInt(keyFxGritDrive, defaults.Effects.GritDrive),
			GritColor: s.getInt(keyFxGritColor, defaults.Effects.GritColor),
			GritMode:  s.getGritMode(defaults.Effects.GritMode),
			ChorusMS:  s.getInt(keyFxChorusMS, defaults.Effects.ChorusMS),
			Tempo:     s.getFloat(keyFxTempo, defaults.Effects.Tempo),
		},
		PlayerCommand: s.configStore.GetString(keyPlayerCommand),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.validate(settings); err != nil {
		return err
	}

	if err := s.configStore.Set(keyEngine, settings.Engine); err != nil {
		return fmt.Errorf("save engine: %w", err)
	}
	if err := s.configStore.Set(keyVoice, settings.Voice); err != nil {
		return fmt.Errorf("save voice: %w", err)
	}

	if err := s.configStore.Set(keyRewriteSeed, settings.Rewrite.Seed); err != nil {
		return fmt.Errorf("save rewrite seed: %w", err)
	}
	if err := s.configStore.Set(keyRewriteStop, settings.Rewrite.StripStopWords); err != nil {
		return fmt.Errorf("save rewrite strip_stop_words: %w", err)
	}
	if err := s.configStore.Set(keyRewriteNth, settings.Rewrite.StripEveryNth); err != nil {
		return fmt.Errorf("save rewrite strip_every_nth: %w", err)
	}
	if err := s.configStore.Set(keyRewritePhrases, settings.Rewrite.LiteralPhrases); err != nil {
		return fmt.Errorf("save rewrite literal_phrases: %w", err)
	}

	if err := s.configStore.Set(keyFxSemitones, settings.Effects.Semitones); err != nil {
		return fmt.Errorf("save effects semitones: %w", err)
	}
	if err := s.configStore.Set(keyFxGritDrive, settings.Effects.GritDrive); err != nil {
		return fmt.Errorf("save effects grit_drive: %w", err)
	}
	if err := s.configStore.Set(keyFxGritColor, settings.Effects.GritColor); err != nil {
		return fmt.Errorf("save effects grit_color: %w", err)
	}
	if err := s.configStore.Set(keyFxGritMode, settings.Effects.GritMode.String()); err != nil {
		return fmt.Errorf("save effects grit_mode: %w", err)
	}
	if err := s.configStore.Set(keyFxChorusMS, settings.Effects.ChorusMS); err != nil {
		return fmt.Errorf("save effects chorus_ms: %w", err)
	}
	if err := s.configStore.Set(keyFxTempo, settings.Effects.Tempo); err != nil {
		return fmt.Errorf("save effects tempo: %w", err)
	}

	if err := s.configStore.Set(keyPlayerCommand, settings.PlayerCommand); err != nil {
		return fmt.Errorf("save player command: %w", err)
	}

	return nil
}

// Set updates one setting by its dot-notation key from a string value.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyEngine:
		settings.Engine = value
	case keyVoice:
		settings.Voice = value
	case keyRewriteSeed:
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w: not an integer: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Rewrite.Seed = seed
	case keyRewriteStop:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w: not a boolean: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Rewrite.StripStopWords = b
	case keyRewriteNth:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w: not an integer: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Rewrite.StripEveryNth = n
	case keyRewritePhrases:
		settings.Rewrite.LiteralPhrases = splitPhrases(value)
	case keyFxSemitones:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w: not an integer: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Effects.Semitones = n
	case keyFxGritDrive:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w: not an integer: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Effects.GritDrive = n
	case keyFxGritColor:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w: not an integer: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Effects.GritColor = n
	case keyFxGritMode:
		settings.Effects.GritMode = domain.GritMode(value)
	case keyFxChorusMS:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w: not an integer: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Effects.ChorusMS = n
	case keyFxTempo:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w: not a number: %q", key, domain.ErrInvalidInput, value)
		}
		settings.Effects.Tempo = f
	case keyPlayerCommand:
		settings.PlayerCommand = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// validate rejects settings the pipeline or effects chain cannot use.
func (s *SettingsService) validate(settings *domain.AppSettings) error {
	if settings.Engine == "" {
		return fmt.Errorf("%w: engine must not be empty", domain.ErrInvalidInput)
	}
	if settings.Rewrite.StripEveryNth < 0 {
		return fmt.Errorf("%w: strip_every_nth must not be negative", domain.ErrInvalidInput)
	}
	if !settings.Effects.GritMode.IsValid() {
		return fmt.Errorf("%w: invalid grit mode %q", domain.ErrInvalidInput, settings.Effects.GritMode)
	}
	if settings.Effects.GritDrive < 0 || settings.Effects.GritDrive > 10 {
		return fmt.Errorf("%w: grit_drive must be 0-10", domain.ErrInvalidInput)
	}
	if settings.Effects.ChorusMS < 0 {
		return fmt.Errorf("%w: chorus_ms must not be negative", domain.ErrInvalidInput)
	}
	if settings.Effects.Tempo <= 0 {
		return fmt.Errorf("%w: tempo must be positive", domain.ErrInvalidInput)
	}
	return nil
}

// splitPhrases parses a comma-separated phrase list.
func splitPhrases(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	phrases := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			phrases = append(phrases, p)
		}
	}
	return phrases
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getGritMode(defaultVal domain.GritMode) domain.GritMode {
	val := s.configStore.GetString(keyFxGritMode)
	if val == "" {
		return defaultVal
	}
	mode := domain.GritMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravelworks/grumble-cli/internal/adapters/driven/storage/memory"
	"github.com/gravelworks/grumble-cli/internal/core/domain"
)

func newSettingsService() (*SettingsService, *memory.ConfigStore) {
	store := memory.NewConfigStore()
	return NewSettingsService(store), store
}

func TestSettingsService_Get_Defaults(t *testing.T) {
	service, _ := newSettingsService()

	settings, err := service.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Engine, settings.Engine)
	assert.Equal(t, "", settings.Voice)
	assert.Equal(t, defaults.Rewrite.Seed, settings.Rewrite.Seed)
	assert.True(t, settings.Rewrite.StripStopWords)
	assert.Equal(t, 3, settings.Rewrite.StripEveryNth)
	assert.Empty(t, settings.Rewrite.LiteralPhrases)
	assert.Equal(t, -2, settings.Effects.Semitones)
	assert.Equal(t, domain.GritModeCombo, settings.Effects.GritMode)
	assert.Equal(t, 0.9, settings.Effects.Tempo)
}

func TestSettingsService_Get_ConfiguredValues(t *testing.T) {
	service, store := newSettingsService()

	_ = store.Set("synth.engine", "say")
	_ = store.Set("synth.voice", "Fred")
	_ = store.Set("rewrite.seed", 7)
	_ = store.Set("rewrite.strip_stop_words", false)
	_ = store.Set("rewrite.strip_every_nth", 0)
	_ = store.Set("rewrite.literal_phrases", []string{"Solo", "Star Wars"})
	_ = store.Set("effects.semitones", 0)
	_ = store.Set("effects.tempo", 1.25)

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, "say", settings.Engine)
	assert.Equal(t, "Fred", settings.Voice)
	assert.Equal(t, int64(7), settings.Rewrite.Seed)
	assert.False(t, settings.Rewrite.StripStopWords)
	assert.Equal(t, 0, settings.Rewrite.StripEveryNth)
	assert.Equal(t, []string{"Solo", "Star Wars"}, settings.Rewrite.LiteralPhrases)

	// Zero is a real configured value, not "use the default".
	assert.Equal(t, 0, settings.Effects.Semitones)
	assert.Equal(t, 1.25, settings.Effects.Tempo)
}

func TestSettingsService_Get_InvalidGritModeFallsBack(t *testing.T) {
	service, store := newSettingsService()
	_ = store.Set("effects.grit_mode", "turbo")

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.GritModeCombo, settings.Effects.GritMode)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	service, _ := newSettingsService()

	in := domain.DefaultAppSettings()
	in.Engine = "say"
	in.Voice = "Fred"
	in.Rewrite.Seed = 99
	in.Rewrite.LiteralPhrases = []string{"Hendo"}
	in.Effects.GritDrive = 5
	in.Effects.GritMode = domain.GritModeOverdrive
	in.Effects.ChorusMS = 55
	in.PlayerCommand = "ffplay"

	require.NoError(t, service.Save(&in))

	out, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, &in, out)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service, _ := newSettingsService()

	tests := []struct {
		name   string
		mutate func(*domain.AppSettings)
	}{
		{"empty engine", func(s *domain.AppSettings) { s.Engine = "" }},
		{"negative nth", func(s *domain.AppSettings) { s.Rewrite.StripEveryNth = -1 }},
		{"bad grit mode", func(s *domain.AppSettings) { s.Effects.GritMode = "turbo" }},
		{"grit drive too high", func(s *domain.AppSettings) { s.Effects.GritDrive = 11 }},
		{"negative chorus", func(s *domain.AppSettings) { s.Effects.ChorusMS = -1 }},
		{"zero tempo", func(s *domain.AppSettings) { s.Effects.Tempo = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultAppSettings()
			tt.mutate(&settings)
			err := service.Save(&settings)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Set_ByKey(t *testing.T) {
	service, _ := newSettingsService()

	require.NoError(t, service.Set("rewrite.seed", "1234"))
	require.NoError(t, service.Set("effects.tempo", "1.1"))
	require.NoError(t, service.Set("effects.grit_mode", "eq"))
	require.NoError(t, service.Set("rewrite.strip_stop_words", "false"))
	require.NoError(t, service.Set("rewrite.literal_phrases", "Solo, Star Wars"))

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, int64(1234), settings.Rewrite.Seed)
	assert.Equal(t, 1.1, settings.Effects.Tempo)
	assert.Equal(t, domain.GritModeEQ, settings.Effects.GritMode)
	assert.False(t, settings.Rewrite.StripStopWords)
	assert.Equal(t, []string{"Solo", "Star Wars"}, settings.Rewrite.LiteralPhrases)
}

func TestSettingsService_Set_InvalidValue(t *testing.T) {
	service, _ := newSettingsService()

	assert.ErrorIs(t, service.Set("rewrite.seed", "not-a-number"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set("effects.tempo", "fast"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set("effects.grit_mode", "turbo"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set("nonsense.key", "1"), domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service, _ := newSettingsService()
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSplitPhrases(t *testing.T) {
	assert.Nil(t, splitPhrases(""))
	assert.Nil(t, splitPhrases("  "))
	assert.Equal(t, []string{"Solo"}, splitPhrases("Solo"))
	assert.Equal(t, []string{"Solo", "Star Wars"}, splitPhrases(" Solo , Star Wars ,"))
}

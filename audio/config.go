package audio

import (
	"encoding/json"
	"os"

	"github.com/lixenwraith/bouncy/config"
)

// AudioConfig holds the resolved mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundBounce: 0.8,
			SoundBlip:   0.4,
			SoundClick:  0.6,
			SoundScore:  0.7,
		},
	}
}

// LoadAudioConfig resolves settings from the game config plus BOUNCY_SFX_VOLUMES,
// a JSON object of per-effect volumes such as {"bounce":0.5,"score":1}
func LoadAudioConfig(c config.Audio) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.Enabled
	cfg.MasterVolume = c.MasterVolume
	if c.SampleRate > 0 {
		cfg.SampleRate = c.SampleRate
	}

	if effectVols := os.Getenv("BOUNCY_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}
	return cfg
}

// volume is the effective gain of one effect
func (c *AudioConfig) volume(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}

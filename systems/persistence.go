package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/motion"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PresetIndex   int           `json:"presetIndex"`
	Custom        motion.Config `json:"custom"`
	UseCustom     bool          `json:"useCustom"`
	ShowDebug     bool          `json:"showDebug"`
	FamiliarCount int           `json:"familiarCount"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "familiar",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error means no
// saved settings exist yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies loaded settings to the global config
// before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	if saved.UseCustom {
		custom := saved.Custom
		cfg.ClampTuning(&custom)
		cfg.Familiar.Motion = custom
	} else if saved.PresetIndex >= 0 && saved.PresetIndex < len(cfg.Presets) {
		cfg.Familiar.Motion = cfg.Presets[saved.PresetIndex].Motion
	}

	cfg.Debug.StartEnabled = saved.ShowDebug
}

// SaveCurrentSettings snapshots the running session to disk.
func SaveCurrentSettings(e *ecs.ECS) {
	tun := mustTuning(e)
	pg := mustPlayground(e)

	saved := &SavedSettings{
		PresetIndex:   tun.PresetIndex,
		Custom:        tun.Edited,
		UseCustom:     tun.Edited != cfg.Presets[tun.PresetIndex].Motion,
		ShowDebug:     pg.ShowDebug,
		FamiliarCount: familiarCount(e),
	}
	_ = SaveSettings(saved)
}

// SavedFamiliarCount reads how many familiars the last session ran, for the
// playground to restore. Falls back to one.
func SavedFamiliarCount() int {
	saved, err := LoadSettings()
	if err != nil || saved == nil || saved.FamiliarCount < 1 {
		return 1
	}
	if saved.FamiliarCount > cfg.Familiar.MaxCount {
		return cfg.Familiar.MaxCount
	}
	return saved.FamiliarCount
}

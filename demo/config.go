package demo

import "flag"

// Config controls a demo Game and the programs that host it.
type Config struct {
	Title string
	// Scale multiplies the 384x216 screen for the window size.
	Scale int
	// Seed feeds the particle random source. Equal seeds and equal input
	// replay identically.
	Seed uint64
	// MaxParticles caps live particles. Zero is unbounded.
	MaxParticles int

	ShowFPS   bool
	ShowStats bool // live particle count in the top-left corner
	Debug     bool // particle manager debug logging to stderr

	// Script is the path of a JSON demo script. Empty runs interactively.
	Script string
	// ExitAfterScript stops the host once the script has finished.
	ExitAfterScript bool
	ScreenshotDir   string

	Volume float64
	Muted  bool

	// PresetFile replaces the built-in presets. It must define trail,
	// explosion, confetti and dust; ember is needed only with Embers.
	PresetFile string
	// Embers adds an ambient ember emitter entity.
	Embers bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Title:         "Burst",
		Scale:         3,
		Seed:          1,
		MaxParticles:  4000,
		ShowStats:     true,
		ScreenshotDir: "screenshots",
		Volume:        0.8,
		Embers:        true,
	}
}

// RegisterFlags binds the config fields to command line flags on fs, using
// the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.MaxParticles, "max-particles", c.MaxParticles, "live particle cap (0 = unbounded)")
	fs.BoolVar(&c.ShowFPS, "fps", c.ShowFPS, "show the FPS overlay")
	fs.BoolVar(&c.ShowStats, "stats", c.ShowStats, "show the particle count")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log particle timings to stderr")
	fs.StringVar(&c.Script, "script", c.Script, "run a JSON demo script")
	fs.BoolVar(&c.ExitAfterScript, "exit-after-script", c.ExitAfterScript, "quit when the script finishes")
	fs.StringVar(&c.ScreenshotDir, "screenshots", c.ScreenshotDir, "screenshot directory")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound volume 0..1")
	fs.BoolVar(&c.Muted, "mute", c.Muted, "start muted")
	fs.StringVar(&c.PresetFile, "presets", c.PresetFile, "YAML preset file")
	fs.BoolVar(&c.Embers, "embers", c.Embers, "ambient ember emitter")
}

// ApplySettings copies persisted settings into c, except for values whose
// flags were set explicitly on fs. fs may be nil.
func (c *Config) ApplySettings(s Settings, fs *flag.FlagSet) {
	set := make(map[string]bool)
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	if !set["scale"] && s.Scale > 0 {
		c.Scale = s.Scale
	}
	if !set["volume"] {
		c.Volume = clampVolume(s.Volume)
	}
	if !set["mute"] {
		c.Muted = s.Muted
	}
	if !set["fps"] {
		c.ShowFPS = s.ShowFPS
	}
}

// Settings returns the persisted subset of c.
func (c Config) Settings() Settings {
	return Settings{
		Scale:   c.Scale,
		Volume:  clampVolume(c.Volume),
		Muted:   c.Muted,
		ShowFPS: c.ShowFPS,
	}
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}

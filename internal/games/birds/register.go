package birds

import (
	"github.com/vovakirdan/tui-birds/internal/config"
	"github.com/vovakirdan/tui-birds/internal/registry"
)

func init() {
	registry.Register("birds", "Birds", func(opts registry.Options) (registry.Game, error) {
		var (
			cfg config.BirdsConfig
			err error
		)
		if opts.ConfigData != nil {
			cfg, err = config.Parse(opts.ConfigData)
		} else {
			cfg, err = config.Load(opts.ConfigPath)
		}
		if err != nil {
			return nil, err
		}
		return New(cfg, WithLogger(opts.Logger)), nil
	})
}

// Tunables returns the configuration as YAML.
func (g *Game) Tunables() ([]byte, error) {
	return config.Marshal(g.cfg)
}

package wildfire

import "wildfire/internal/core"

// Parameters describes the configuration and the progress of the run.
func (s *Sim) Parameters() core.ParameterSnapshot {
	c := s.Counts()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Forest",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.FloatParam("density", "Density", s.cfg.Density),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
				core.IntParam("max_cycles", "Cycle limit", s.cfg.CycleLimit()),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				core.IntParam("cycle", "Cycle", s.cycle),
				core.IntParam("living", "Living", c.Living),
				core.IntParam("ignited", "Ignited", c.Ignited),
				core.IntParam("burning", "Burning", c.Burning),
				core.IntParam("burned", "Burned", c.Burned),
				{Key: "burn_rate", Label: "Burn rate", Type: core.ParamTypeFloat, Value: FormatRate(c.BurnRate())},
			},
		},
	}}
}

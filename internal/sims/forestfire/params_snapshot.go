package forestfire

import (
	"strconv"

	"forest-fire/internal/core"
)

const (
	paramGrowth  = "f"
	paramIgnite  = "p"
	paramDensity = "density"
)

// Parameters reports the current tunables.
func (s *Sim) Parameters() core.ParameterSnapshot {
	census := s.field.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.field.Width()),
				intParam("h", "Height", s.field.Height()),
				int64Param("seed", "Seed", s.cfg.Seed),
				intParam("generation", "Generation", s.generation),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam(paramGrowth, "Growth chance", s.field.GrowthProbability()),
				floatParam(paramIgnite, "Ignite chance", s.field.IgniteProbability()),
				floatParam(paramDensity, "Seed tree density", s.cfg.Params.TreeDensity),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				intParam("trees", "Trees", census.Tree),
				intParam("burning", "Burning", census.Burning),
				intParam("empty", "Empty", census.Empty),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values adjustable at runtime.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		probabilityControl(paramGrowth, "Growth chance", 0.01),
		probabilityControl(paramIgnite, "Ignite chance", 0.001),
		probabilityControl(paramDensity, "Seed tree density", 0.05),
	}
}

// SetFloatParameter updates a probability, clamping it to [0, 1]. Growth and
// ignite apply from the next step, density from the next reset.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	value = probabilityControl(key, "", 0).Clamp(value)
	switch key {
	case paramGrowth:
		return s.setProbabilities(value, s.field.IgniteProbability())
	case paramIgnite:
		return s.setProbabilities(s.field.GrowthProbability(), value)
	case paramDensity:
		if !validProbability(value) {
			return false
		}
		s.cfg.Params.TreeDensity = value
		return true
	}
	return false
}

func (s *Sim) setProbabilities(growth, ignite float64) bool {
	field, err := s.field.WithProbabilities(growth, ignite)
	if err != nil {
		return false
	}
	s.field = field
	s.cfg.Params.Growth = growth
	s.cfg.Params.Ignite = ignite
	return true
}

func probabilityControl(key, label string, step float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

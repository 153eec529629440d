package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"forest-fire/internal/core"

	"github.com/gdamore/tcell/v2"
)

var (
	titleStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 210)).Bold(true)
	textStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 230))
	dimStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 160, 170))
	selectedStyle = textStyle.Reverse(true)
)

const keyHelp = "space pause  n step  r reset  s reseed  tab select  +/- adjust  q quit"

// HUD renders the parameter panel to the right of the simulation view and
// applies keyboard adjustments to the selected control.
type HUD struct {
	sim      core.Sim
	snapshot core.ParameterSnapshot
	title    string

	controls    []hudControlState
	selected    int
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
}

// Selected returns the key of the highlighted control, or "" when the sim
// exposes none.
func (h *HUD) Selected() string {
	if len(h.controls) == 0 {
		return ""
	}
	return h.controls[h.selected].control.Key
}

// Select moves the highlight by delta controls, wrapping at either end.
func (h *HUD) Select(delta int) {
	n := len(h.controls)
	if n == 0 {
		return
	}
	h.selected = ((h.selected+delta)%n + n) % n
}

// Adjust nudges the selected control one step in direction and reports
// whether the sim accepted the new value.
func (h *HUD) Adjust(direction int) bool {
	if len(h.controls) == 0 {
		return false
	}
	state := &h.controls[h.selected]
	if !state.hasValue || !h.canAdjust(state, direction) {
		return false
	}
	return h.applyAdjustment(state, direction)
}

func buildTitle(sim core.Sim) string {
	if sim == nil {
		return "Controls"
	}
	name := sim.Name()
	if name == "" {
		return "Controls"
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return fmt.Sprintf("%s Controls", string(r))
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok || state.control.Type != core.ParamTypeFloat {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = h.formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	if h.floatSetter == nil || direction == 0 {
		return false
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*controlStep(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return false
	}
	if !h.floatSetter.SetFloatParameter(state.control.Key, target) {
		return false
	}
	state.floatValue = target
	state.value = h.formatFloat(state.control, target)
	return true
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.floatSetter == nil || direction == 0 {
		return false
	}
	if state.control.HasMin && direction < 0 && state.floatValue <= state.control.Min {
		return false
	}
	if state.control.HasMax && direction > 0 && state.floatValue >= state.control.Max {
		return false
	}
	return true
}

func controlStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func (h *HUD) formatFloat(ctrl core.ParameterControl, value float64) string {
	step := controlStep(ctrl)
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// hudLine is one row of panel text.
type hudLine struct {
	text  string
	style tcell.Style
}

// Lines lays out the panel contents top to bottom.
func (h *HUD) Lines() []string {
	lines := h.layout()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

func (h *HUD) layout() []hudLine {
	lines := []hudLine{{text: h.title, style: titleStyle}}
	for _, group := range h.snapshot.Groups {
		lines = append(lines, hudLine{text: group.Name, style: dimStyle})
		for _, param := range group.Params {
			lines = append(lines, hudLine{text: fmt.Sprintf("  %s: %s", param.Label, param.Value), style: textStyle})
		}
	}
	lines = append(lines, hudLine{})
	if len(h.controls) == 0 {
		lines = append(lines, hudLine{text: "No adjustable parameters", style: dimStyle})
	}
	for i, state := range h.controls {
		marker, style := "  ", textStyle
		if i == h.selected {
			marker, style = "> ", selectedStyle
		}
		if !state.hasValue {
			style = dimStyle
		}
		lines = append(lines, hudLine{text: marker + state.control.Label + " " + state.value, style: style})
	}
	lines = append(lines, hudLine{}, hudLine{text: keyHelp, style: dimStyle})
	return lines
}

// Draw paints the panel with its left edge at column offsetX.
func (h *HUD) Draw(screen tcell.Screen, offsetX int) {
	if h == nil {
		return
	}
	for y, line := range h.layout() {
		x := offsetX
		for _, r := range strings.TrimRight(line.text, " ") {
			screen.SetContent(x, y, r, nil, line.style)
			x++
		}
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool
}

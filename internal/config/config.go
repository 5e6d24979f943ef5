// Package config holds the tunable estimation parameters and the optional
// settings file they can be loaded from.
package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"design-timeline/internal/model"
)

type Role string

const (
	RoleSenior Role = "senior"
	RoleMiddle Role = "middle"
	RoleJunior Role = "junior"
)

// Roles lists the built-in roles in display order.
var Roles = []Role{RoleSenior, RoleMiddle, RoleJunior}

// presetTolerance is how close pageTimeDays must be to a preset to count as "still on preset".
const presetTolerance = 1e-6

type Configuration struct {
	// RolePresets maps role -> days per page.
	RolePresets map[Role]float64 `json:"rolePresets" yaml:"role_presets"`
	Role        Role             `json:"role" yaml:"role"`
	// PageTimeDays is normally the selected preset but can be edited independently.
	PageTimeDays float64                      `json:"pageTimeDays" yaml:"page_time_days"`
	HoursPerDay  float64                      `json:"hoursPerDay" yaml:"hours_per_day"`
	Multipliers  map[model.Complexity]float64 `json:"multipliers" yaml:"multipliers"`
}

func DefaultRolePresets() map[Role]float64 {
	return map[Role]float64{
		RoleSenior: 0.2,
		RoleMiddle: 0.3,
		RoleJunior: 0.4,
	}
}

func DefaultMultipliers() map[model.Complexity]float64 {
	return map[model.Complexity]float64{
		model.ComplexityNormal: 0.5,
		model.ComplexityMedium: 1,
		model.ComplexityHard:   2,
	}
}

// Default returns the session-start configuration.
func Default() Configuration {
	presets := DefaultRolePresets()
	return Configuration{
		RolePresets:  presets,
		Role:         RoleMiddle,
		PageTimeDays: presets[RoleMiddle],
		HoursPerDay:  8,
		Multipliers:  DefaultMultipliers(),
	}
}

// Clone returns a deep copy so snapshots handed to collaborators cannot alias the live maps.
func (c Configuration) Clone() Configuration {
	out := c
	out.RolePresets = make(map[Role]float64, len(c.RolePresets))
	for k, v := range c.RolePresets {
		out.RolePresets[k] = v
	}
	out.Multipliers = make(map[model.Complexity]float64, len(c.Multipliers))
	for k, v := range c.Multipliers {
		out.Multipliers[k] = v
	}
	return out
}

// Multiplier looks up the weight for a complexity tag, falling back to 1 for unknown tags.
func (c Configuration) Multiplier(cx model.Complexity) float64 {
	if v, ok := c.Multipliers[cx]; ok {
		return nonNegative(v)
	}
	return 1
}

// HoursPerPage is pageTimeDays x hoursPerDay (display only).
func (c Configuration) HoursPerPage() float64 {
	return nonNegative(c.PageTimeDays) * nonNegative(c.HoursPerDay)
}

func (c Configuration) Preset(r Role) (float64, bool) {
	v, ok := c.RolePresets[r]
	return v, ok
}

// RoleMatchesPreset reports whether the current page time still equals r's preset.
func (c Configuration) RoleMatchesPreset(r Role) bool {
	p, ok := c.RolePresets[r]
	if !ok {
		return false
	}
	return math.Abs(c.PageTimeDays-p) < presetTolerance
}

// RoleLabel capitalizes the role name ("middle" -> "Middle").
func (c Configuration) RoleLabel() string {
	s := strings.TrimSpace(string(c.Role))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SortedRoles returns the preset roles: built-ins first in their usual order,
// then any custom roles alphabetically.
func (c Configuration) SortedRoles() []Role {
	out := make([]Role, 0, len(c.RolePresets))
	seen := map[Role]bool{}
	for _, r := range Roles {
		if _, ok := c.RolePresets[r]; ok {
			out = append(out, r)
			seen[r] = true
		}
	}
	var extra []Role
	for r := range c.RolePresets {
		if !seen[r] {
			extra = append(extra, r)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// SetRole selects a role and resets the page time to its preset.
// Unknown roles leave the configuration untouched.
func (c *Configuration) SetRole(r Role) bool {
	p, ok := c.RolePresets[r]
	if !ok {
		return false
	}
	c.Role = r
	c.PageTimeDays = p
	return true
}

func (c *Configuration) SetPageTimeDays(v float64) {
	c.PageTimeDays = nonNegative(v)
}

func (c *Configuration) SetHoursPerDay(v float64) {
	c.HoursPerDay = nonNegative(v)
}

func (c *Configuration) SetMultiplier(cx model.Complexity, v float64) {
	if c.Multipliers == nil {
		c.Multipliers = map[model.Complexity]float64{}
	}
	c.Multipliers[cx] = nonNegative(v)
}

func (c *Configuration) SetPreset(r Role, v float64) {
	if c.RolePresets == nil {
		c.RolePresets = map[Role]float64{}
	}
	c.RolePresets[r] = nonNegative(v)
}

// normalize fills anything a partial settings file left out.
func (c *Configuration) normalize() {
	d := Default()
	if len(c.RolePresets) == 0 {
		c.RolePresets = d.RolePresets
	}
	if c.Multipliers == nil {
		c.Multipliers = map[model.Complexity]float64{}
	}
	for k, v := range d.Multipliers {
		if _, ok := c.Multipliers[k]; !ok {
			c.Multipliers[k] = v
		}
	}
	if c.Role == "" {
		c.Role = d.Role
	}
	if _, ok := c.RolePresets[c.Role]; !ok {
		c.Role = d.Role
		if _, ok := c.RolePresets[c.Role]; !ok {
			c.RolePresets[c.Role] = d.RolePresets[d.Role]
		}
	}
	if c.PageTimeDays <= 0 {
		c.PageTimeDays = c.RolePresets[c.Role]
	}
	if c.HoursPerDay <= 0 {
		c.HoursPerDay = d.HoursPerDay
	}
	c.PageTimeDays = nonNegative(c.PageTimeDays)
}

type UnknownRoleError struct {
	Role string
}

func (e UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role: %s", e.Role)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

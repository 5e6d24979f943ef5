// Package session is the single editing session a rendering surface drives:
// the outline, its configuration, the project name and the keyboard rules.
package session

import (
	"strings"

	"design-timeline/internal/config"
	"design-timeline/internal/estimate"
	"design-timeline/internal/focus"
	"design-timeline/internal/model"
	"design-timeline/internal/outline"
	"design-timeline/internal/report"
)

type Session struct {
	outline  *outline.Outline
	director *focus.Director
	cfg      config.Configuration
	project  string
}

// New starts an empty session using cfg. opts are passed to the outline.
func New(cfg config.Configuration, opts ...outline.Option) *Session {
	o := outline.New(opts...)
	return &Session{
		outline:  o,
		director: focus.NewDirector(o),
		cfg:      cfg.Clone(),
	}
}

// Snapshot is every read-side value of a session at one point in time.
type Snapshot struct {
	ProjectName string               `json:"projectName" yaml:"projectName"`
	Items       []model.Item         `json:"items" yaml:"items"`
	Collapsed   map[string]bool      `json:"collapsed" yaml:"collapsed"`
	Config      config.Configuration `json:"config" yaml:"config"`
	Estimates   estimate.Result      `json:"estimates" yaml:"estimates"`
	Visible     []outline.Row        `json:"-" yaml:"-"`
}

func (s *Session) Items() []model.Item          { return s.outline.Items() }
func (s *Session) Collapsed() map[string]bool   { return s.outline.Collapsed() }
func (s *Session) Config() config.Configuration { return s.cfg.Clone() }
func (s *Session) ProjectName() string          { return s.project }
func (s *Session) Visible() []outline.Row       { return s.outline.Visible() }

func (s *Session) Find(id string) (model.Item, bool) { return s.outline.Find(id) }
func (s *Session) IsCollapsed(mainID string) bool    { return s.outline.IsCollapsed(mainID) }

// Run queries. Run boundaries are always derived by the outline.

func (s *Session) Owner(id string) (string, bool)  { return s.outline.Owner(id) }
func (s *Session) Children(mainID string) []string { return s.outline.Children(mainID) }
func (s *Session) HasChildren(mainID string) bool  { return s.outline.HasChildren(mainID) }

// Estimates re-derives durations from the current items and configuration.
func (s *Session) Estimates() estimate.Result {
	return estimate.Compute(s.outline.Items(), s.cfg)
}

func (s *Session) Snapshot() Snapshot {
	items := s.outline.Items()
	return Snapshot{
		ProjectName: s.project,
		Items:       items,
		Collapsed:   s.outline.Collapsed(),
		Config:      s.cfg.Clone(),
		Estimates:   estimate.Compute(items, s.cfg),
		Visible:     s.outline.Visible(),
	}
}

// Report builds the printable summary of the current state.
func (s *Session) Report() report.Report {
	items := s.outline.Items()
	return report.Build(s.project, items, estimate.Compute(items, s.cfg), s.cfg)
}

// Outline operations.

func (s *Session) InsertMain() string { return s.outline.InsertMain() }

func (s *Session) InsertSubUnder(mainID string) (string, bool) {
	return s.outline.InsertSubUnder(mainID)
}

func (s *Session) InsertSubAfter(subID string) (string, bool) {
	return s.outline.InsertSubAfter(subID)
}

func (s *Session) InsertMainAfterGroup(anyID string) (string, bool) {
	return s.outline.InsertMainAfterGroup(anyID)
}

func (s *Session) UpdateItem(id string, patch model.ItemPatch) bool {
	return s.outline.Update(id, patch)
}

func (s *Session) RemoveItem(id string) []string { return s.outline.Remove(id) }

func (s *Session) Toggle(mainID string) bool { return s.outline.Toggle(mainID) }

func (s *Session) SetAllCollapsed(collapsed bool) { s.outline.SetAllCollapsed(collapsed) }

// HandleKey applies the authoring key rules. When the result is Handled the
// caller must not apply its default key behavior.
func (s *Session) HandleKey(ev focus.Event) focus.Result {
	return s.director.Handle(ev)
}

// RequestFocus asks the renderer to focus id on its next pass.
func (s *Session) RequestFocus(id string) bool { return s.outline.RequestFocus(id) }

// ConsumeFocus returns and clears the pending focus target. A target that no
// longer exists is dropped.
func (s *Session) ConsumeFocus() (string, bool) { return s.outline.ConsumeFocus() }

// Project and configuration setters.

func (s *Session) SetProjectName(name string) { s.project = name }

// SetRole selects a role preset and resets the page time to it.
func (s *Session) SetRole(role string) error {
	r := config.Role(strings.ToLower(strings.TrimSpace(role)))
	if !s.cfg.SetRole(r) {
		return config.UnknownRoleError{Role: role}
	}
	return nil
}

func (s *Session) SetPageTimeDays(v float64) { s.cfg.SetPageTimeDays(v) }

func (s *Session) SetHoursPerDay(v float64) { s.cfg.SetHoursPerDay(v) }

func (s *Session) SetMultiplier(cx model.Complexity, v float64) { s.cfg.SetMultiplier(cx, v) }

// SetConfig replaces the whole configuration (settings modal "save").
func (s *Session) SetConfig(cfg config.Configuration) { s.cfg = cfg.Clone() }

// Reset clears the outline and the project name. The configuration is kept.
func (s *Session) Reset() {
	s.outline.Reset()
	s.project = ""
}

package focus

import (
	"fmt"
	"reflect"
	"testing"

	"design-timeline/internal/model"
	"design-timeline/internal/outline"
)

func newTestOutline() *outline.Outline {
	n := 0
	return outline.New(outline.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}))
}

func ids(o *outline.Outline) []string {
	var out []string
	for _, it := range o.Items() {
		out = append(out, it.ID)
	}
	return out
}

var (
	enter      = Stroke{Key: KeyEnter}
	shiftEnter = Stroke{Key: KeyEnter, Shift: true}
	shiftDel   = Stroke{Key: KeyDelete, Shift: true}
	shiftBksp  = Stroke{Key: KeyBackspace, Shift: true}
)

func TestEnterOnMain_InsertsSubAndFocusesIt(t *testing.T) {
	for _, field := range []Field{FieldName, FieldScreens, FieldComplexity} {
		for _, stroke := range []Stroke{enter, shiftEnter} {
			t.Run(fmt.Sprintf("%s shift=%v", field, stroke.Shift), func(t *testing.T) {
				o := newTestOutline()
				d := NewDirector(o)
				m := o.InsertMain()
				o.InsertSubUnder(m)
				o.Toggle(m)
				o.ClearFocus()

				res := d.Handle(Event{Stroke: stroke, Field: field, ItemID: m})
				if !res.Handled || res.Action != ActionInsertSubUnder {
					t.Fatalf("unexpected result: %+v", res)
				}
				if got := o.Children(m); got[len(got)-1] != res.NewItemID {
					t.Fatalf("expected new sub at end of run; children=%v new=%q", got, res.NewItemID)
				}
				if o.IsCollapsed(m) {
					t.Fatalf("expected main expanded after insertion")
				}
				if got, ok := o.ConsumeFocus(); !ok || got != res.NewItemID {
					t.Fatalf("ConsumeFocus: got (%q,%v), want %q", got, ok, res.NewItemID)
				}
			})
		}
	}
}

func TestEnterOnSub_InsertsSiblingAfter(t *testing.T) {
	for _, field := range []Field{FieldName, FieldScreens, FieldComplexity} {
		t.Run(field.String(), func(t *testing.T) {
			o := newTestOutline()
			d := NewDirector(o)
			m := o.InsertMain()
			a, _ := o.InsertSubUnder(m)
			c, _ := o.InsertSubUnder(m)

			res := d.Handle(Event{Stroke: enter, Field: field, ItemID: a})
			if res.Action != ActionInsertSubAfter {
				t.Fatalf("unexpected action: %v", res.Action)
			}
			if got, want := ids(o), []string{m, a, res.NewItemID, c}; !reflect.DeepEqual(got, want) {
				t.Fatalf("order: got %v, want %v", got, want)
			}
			if got, _ := o.ConsumeFocus(); got != res.NewItemID {
				t.Fatalf("focus: got %q, want %q", got, res.NewItemID)
			}
		})
	}
}

func TestShiftEnterOnSub_InsertsMainAfterGroup(t *testing.T) {
	for _, field := range []Field{FieldName, FieldScreens, FieldComplexity} {
		t.Run(field.String(), func(t *testing.T) {
			o := newTestOutline()
			d := NewDirector(o)
			m1 := o.InsertMain()
			a, _ := o.InsertSubUnder(m1)
			b, _ := o.InsertSubUnder(m1)
			m3 := o.InsertMain()

			res := d.Handle(Event{Stroke: shiftEnter, Field: field, ItemID: a})
			if res.Action != ActionInsertMainAfterGroup {
				t.Fatalf("unexpected action: %v", res.Action)
			}
			if got, want := ids(o), []string{m1, a, b, res.NewItemID, m3}; !reflect.DeepEqual(got, want) {
				t.Fatalf("order: got %v, want %v", got, want)
			}
			it, _ := o.Find(res.NewItemID)
			if it.Kind != model.KindMain || it.EstimatedScreens != 1 {
				t.Fatalf("expected a default main; got %+v", it)
			}
			if got, _ := o.ConsumeFocus(); got != res.NewItemID {
				t.Fatalf("focus: got %q, want %q", got, res.NewItemID)
			}
		})
	}
}

func TestShiftDelete_FocusesPreviousSub(t *testing.T) {
	o := newTestOutline()
	d := NewDirector(o)
	m1 := o.InsertMain()
	s1, _ := o.InsertSubUnder(m1)
	s2, _ := o.InsertSubUnder(m1)
	o.ClearFocus()

	res := d.Handle(Event{Stroke: shiftDel, Field: FieldName, ItemID: s2})
	if res.Action != ActionDeleteSub {
		t.Fatalf("unexpected action: %v", res.Action)
	}
	if got, want := ids(o), []string{m1, s1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order: got %v, want %v", got, want)
	}
	if got, ok := o.ConsumeFocus(); !ok || got != s1 {
		t.Fatalf("focus: got (%q,%v), want %q", got, ok, s1)
	}
}

func TestShiftDelete_CrossesRunsAndExpandsOwner(t *testing.T) {
	o := newTestOutline()
	d := NewDirector(o)
	m1 := o.InsertMain()
	s1, _ := o.InsertSubUnder(m1)
	m2 := o.InsertMain()
	s2, _ := o.InsertSubUnder(m2)
	o.Toggle(m1)

	d.Handle(Event{Stroke: shiftBksp, Field: FieldName, ItemID: s2})
	if got, _ := o.ConsumeFocus(); got != s1 {
		t.Fatalf("focus: got %q, want %q (previous run's sub)", got, s1)
	}
	if o.IsCollapsed(m1) {
		t.Fatalf("expected owner of the focus target to be expanded")
	}
}

func TestShiftDelete_FallsBackToMain(t *testing.T) {
	o := newTestOutline()
	d := NewDirector(o)
	m := o.InsertMain()
	s, _ := o.InsertSubUnder(m)

	d.Handle(Event{Stroke: shiftDel, Field: FieldName, ItemID: s})
	if got, _ := o.ConsumeFocus(); got != m {
		t.Fatalf("focus: got %q, want %q", got, m)
	}
}

func TestShiftDelete_IgnoredOnMainAndNonNameFields(t *testing.T) {
	o := newTestOutline()
	d := NewDirector(o)
	m := o.InsertMain()
	s, _ := o.InsertSubUnder(m)
	before := o.State()

	if res := d.Handle(Event{Stroke: shiftDel, Field: FieldName, ItemID: m}); res.Handled {
		t.Fatalf("expected shift+delete on a main to be unhandled")
	}
	if res := d.Handle(Event{Stroke: shiftDel, Field: FieldScreens, ItemID: s}); res.Handled {
		t.Fatalf("expected shift+delete on the screens field to be unhandled")
	}
	if res := d.Handle(Event{Stroke: Stroke{Key: KeyDelete}, Field: FieldName, ItemID: s}); res.Handled {
		t.Fatalf("expected plain delete to be unhandled")
	}
	if !reflect.DeepEqual(before, o.State()) {
		t.Fatalf("expected outline unchanged")
	}
}

func TestFallbackTarget(t *testing.T) {
	main := func(id string) model.Item { return model.NewMain(id) }
	sub := func(id string) model.Item { return model.NewSub(id) }

	tests := []struct {
		name  string
		items []model.Item
		idx   int
		want  string
	}{
		{name: "previous sub same run", items: []model.Item{main("m"), sub("a"), sub("b")}, idx: 2, want: "a"},
		{name: "previous sub earlier run", items: []model.Item{main("m1"), sub("a"), main("m2"), sub("b")}, idx: 3, want: "a"},
		{name: "previous main", items: []model.Item{main("m1"), main("m2"), sub("b")}, idx: 2, want: "m2"},
		{name: "next item", items: []model.Item{sub("a"), main("m")}, idx: 0, want: "m"},
		{name: "nothing", items: []model.Item{sub("a")}, idx: 0, want: ""},
		{name: "out of range", items: []model.Item{main("m")}, idx: 4, want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackTarget(tt.items, tt.idx); got != tt.want {
				t.Fatalf("FallbackTarget: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTabOnProjectField_RedirectsToAddMain(t *testing.T) {
	o := newTestOutline()
	d := NewDirector(o)

	if res := d.Handle(Event{Stroke: Stroke{Key: KeyTab}, Field: FieldProject}); !res.Handled || res.Action != ActionFocusAddMain {
		t.Fatalf("unexpected result for tab: %+v", res)
	}
	if res := d.Handle(Event{Stroke: Stroke{Key: KeyTab, Shift: true}, Field: FieldProject}); res.Handled {
		t.Fatalf("expected shift+tab to keep default behavior")
	}
	if o.Len() != 0 {
		t.Fatalf("expected no structural change")
	}
}

func TestEnterOnAddMain_AppendsAndFocuses(t *testing.T) {
	o := newTestOutline()
	d := NewDirector(o)
	existing := o.InsertMain()
	o.InsertSubUnder(existing)
	o.ClearFocus()

	res := d.Handle(Event{Stroke: enter, Field: FieldAddMain})
	if res.Action != ActionInsertMain {
		t.Fatalf("unexpected action: %v", res.Action)
	}
	got := ids(o)
	if got[len(got)-1] != res.NewItemID {
		t.Fatalf("expected new main appended; got %v", got)
	}
	if f, _ := o.ConsumeFocus(); f != res.NewItemID {
		t.Fatalf("focus: got %q, want %q", f, res.NewItemID)
	}
}

func TestUnknownItem_Unhandled(t *testing.T) {
	o := newTestOutline()
	d := NewDirector(o)
	if res := d.Handle(Event{Stroke: enter, Field: FieldName, ItemID: "ghost"}); res.Handled {
		t.Fatalf("expected unknown item to be unhandled")
	}
}

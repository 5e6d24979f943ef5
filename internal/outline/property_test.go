package outline

import (
	"reflect"
	"testing"

	"design-timeline/internal/model"

	"pgregory.net/rapid"
)

// pickID draws an existing id, or an unknown one a fraction of the time.
func pickID(t *rapid.T, o *Outline) string {
	items := o.Items()
	if len(items) == 0 || rapid.IntRange(0, 9).Draw(t, "unknown") == 0 {
		return "item-unknown"
	}
	return items[rapid.IntRange(0, len(items)-1).Draw(t, "idx")].ID
}

func TestProperty_GroupingInvariantHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := New(WithIDFunc(seqIDs()))
		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 6).Draw(t, "op") {
			case 0:
				o.InsertMain()
			case 1:
				o.InsertSubUnder(pickID(t, o))
			case 2:
				o.InsertSubAfter(pickID(t, o))
			case 3:
				o.InsertMainAfterGroup(pickID(t, o))
			case 4:
				o.Remove(pickID(t, o))
			case 5:
				o.Toggle(pickID(t, o))
			case 6:
				o.Update(pickID(t, o), model.ScreensPatch(float64(rapid.IntRange(-3, 9).Draw(t, "screens"))))
			}
			if err := o.Check(); err != nil {
				t.Fatalf("after step %d: %v (kinds=%s)", i, err, kinds(o))
			}
			for id := range o.collapsed {
				if it, ok := o.Find(id); !ok || it.Kind != model.KindMain {
					t.Fatalf("collapse entry %q does not reference a live main", id)
				}
			}
		}
	})
}

func TestProperty_CascadingDelete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := New(WithIDFunc(seqIDs()))
		mains := rapid.IntRange(1, 5).Draw(t, "mains")
		var mainIDs []string
		for i := 0; i < mains; i++ {
			m := o.InsertMain()
			mainIDs = append(mainIDs, m)
			subs := rapid.IntRange(0, 4).Draw(t, "subs")
			for j := 0; j < subs; j++ {
				o.InsertSubUnder(m)
			}
			if rapid.Bool().Draw(t, "collapse") {
				o.Toggle(m)
			}
		}

		target := rapid.SampledFrom(mainIDs).Draw(t, "target")
		k := len(o.Children(target))
		before := o.Len()
		removed := o.Remove(target)

		if o.Len() != before-(k+1) {
			t.Fatalf("len: got %d, want %d", o.Len(), before-(k+1))
		}
		for _, id := range removed {
			if _, ok := o.Collapsed()[id]; ok {
				t.Fatalf("removed id %q still in collapse state", id)
			}
			if _, ok := o.Find(id); ok {
				t.Fatalf("removed id %q still in outline", id)
			}
		}
	})
}

func TestProperty_SubDeletePreservesOthers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := New(WithIDFunc(seqIDs()))
		m := o.InsertMain()
		n := rapid.IntRange(1, 6).Draw(t, "subs")
		for i := 0; i < n; i++ {
			o.InsertSubUnder(m)
		}
		o.InsertMain()

		subs := o.Children(m)
		target := rapid.SampledFrom(subs).Draw(t, "target")
		before := o.Items()
		o.Remove(target)

		var want []model.Item
		for _, it := range before {
			if it.ID != target {
				want = append(want, it)
			}
		}
		if got := o.Items(); !reflect.DeepEqual(got, want) {
			t.Fatalf("items after sub delete:\n got: %v\nwant: %v", got, want)
		}
	})
}

func TestProperty_CollapseKeepsItems(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := New(WithIDFunc(seqIDs()))
		mains := rapid.IntRange(1, 4).Draw(t, "mains")
		for i := 0; i < mains; i++ {
			m := o.InsertMain()
			subs := rapid.IntRange(0, 3).Draw(t, "subs")
			for j := 0; j < subs; j++ {
				o.InsertSubUnder(m)
			}
		}
		before := len(o.Items())
		o.SetAllCollapsed(true)
		if len(o.Items()) != before {
			t.Fatalf("collapsing changed the item count")
		}
		if len(o.Visible()) > before {
			t.Fatalf("visible rows exceed items")
		}
	})
}

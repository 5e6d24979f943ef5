package model

import (
	"math"
	"strconv"
	"strings"
)

type Kind string

const (
	KindMain Kind = "Main"
	KindSub  Kind = "Sub"
)

type Complexity string

const (
	ComplexityNormal Complexity = "normal"
	ComplexityMedium Complexity = "medium"
	ComplexityHard   Complexity = "hard"
)

// Complexities lists the known tags in display order.
var Complexities = []Complexity{ComplexityNormal, ComplexityMedium, ComplexityHard}

const (
	DefaultMainName = "Main Page"
	DefaultSubName  = "Sub Page"
)

type Item struct {
	ID               string     `json:"id" yaml:"id"`
	Kind             Kind       `json:"kind" yaml:"kind"`
	Name             string     `json:"name" yaml:"name"`
	EstimatedScreens float64    `json:"estimatedScreens" yaml:"estimatedScreens"`
	Complexity       Complexity `json:"complexity" yaml:"complexity"`
}

// NewMain returns a Main item with default field values.
func NewMain(id string) Item {
	return Item{ID: id, Kind: KindMain, Name: DefaultMainName, EstimatedScreens: 1, Complexity: ComplexityNormal}
}

// NewSub returns a Sub item with default field values.
func NewSub(id string) Item {
	return Item{ID: id, Kind: KindSub, Name: DefaultSubName, EstimatedScreens: 0, Complexity: ComplexityNormal}
}

// ItemPatch carries the mutable fields of an Item. Nil fields are left untouched.
// There is no Kind: an item never changes kind.
type ItemPatch struct {
	Name             *string
	EstimatedScreens *float64
	Complexity       *Complexity
}

func (p ItemPatch) Apply(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.EstimatedScreens != nil {
		it.EstimatedScreens = CoerceScreens(*p.EstimatedScreens)
	}
	if p.Complexity != nil {
		it.Complexity = *p.Complexity
	}
	return it
}

func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.EstimatedScreens == nil && p.Complexity == nil
}

// NamePatch, ScreensPatch and ComplexityPatch build single-field patches.
func NamePatch(name string) ItemPatch { return ItemPatch{Name: &name} }

func ScreensPatch(n float64) ItemPatch { return ItemPatch{EstimatedScreens: &n} }

func ComplexityPatch(c Complexity) ItemPatch { return ItemPatch{Complexity: &c} }

// CoerceScreens maps NaN, infinities and negatives to 0.
func CoerceScreens(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

// ParseScreens reads a screen count typed by the user. Anything that is not a
// non-negative number becomes 0.
func ParseScreens(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return CoerceScreens(n)
}

// ParseComplexity normalizes a complexity tag. The older tag names "quite" and
// "more" are accepted for medium and hard. Unknown tags are returned as-is with
// ok=false so callers can decide whether to keep them.
func ParseComplexity(s string) (Complexity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "":
		return ComplexityNormal, true
	case "medium", "quite":
		return ComplexityMedium, true
	case "hard", "more":
		return ComplexityHard, true
	default:
		return Complexity(strings.TrimSpace(s)), false
	}
}

// Label is the display label used in tables and reports.
func (c Complexity) Label() string {
	switch c {
	case ComplexityNormal:
		return "Normal"
	case ComplexityMedium:
		return "Medium"
	case ComplexityHard:
		return "Hard"
	default:
		return string(c)
	}
}

// Next cycles through the known complexities; unknown tags restart at normal.
func (c Complexity) Next() Complexity {
	for i, x := range Complexities {
		if x == c {
			return Complexities[(i+1)%len(Complexities)]
		}
	}
	return ComplexityNormal
}

func (c Complexity) Prev() Complexity {
	for i, x := range Complexities {
		if x == c {
			return Complexities[(i-1+len(Complexities))%len(Complexities)]
		}
	}
	return ComplexityNormal
}

func (k Kind) Label() string {
	if k == KindMain {
		return "Main Page"
	}
	return "Sub Page"
}

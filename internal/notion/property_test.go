package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestPropertyTextTitle(t *testing.T) {
	p := Property{Type: TypeTitle, Title: []RichText{{PlainText: "篮球"}, {PlainText: "训练"}}}
	assert.Equal(t, "篮球训练", p.Text())
}

func TestPropertyTextSelectAndMultiSelect(t *testing.T) {
	p := Property{Type: TypeSelect, Select: &SelectOption{Name: "周三班"}}
	assert.Equal(t, "周三班", p.Text())

	p = Property{Type: TypeMultiSelect, MultiSelect: []SelectOption{{Name: "一班"}, {Name: ""}, {Name: "二班"}}}
	assert.Equal(t, "一班、二班", p.Text())
}

func TestPropertyTextCountLabels(t *testing.T) {
	p := Property{Type: TypePeople, People: []Person{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, "2位老师", p.Text())

	p = Property{Type: TypeRelation, Relation: []Relation{{ID: "c"}}}
	assert.Equal(t, "1个班级", p.Text())

	assert.Equal(t, "", Property{Type: TypePeople}.Text())
	assert.Equal(t, "", Property{Type: TypeRelation}.Text())
}

func TestPropertyTextUnknownTag(t *testing.T) {
	assert.Equal(t, "", Property{Type: "checkbox"}.Text())
	assert.Equal(t, "", Property{}.Text())
}

func TestPropertyNumberLike(t *testing.T) {
	assert.Equal(t, floatPtr(0.85), Property{Type: TypeNumber, Number: floatPtr(0.85)}.NumberLike())
	assert.Equal(t, floatPtr(12), Property{Type: TypeRollup, Rollup: &Rollup{Number: floatPtr(12)}}.NumberLike())
	assert.Equal(t, floatPtr(0.5), Property{Type: TypeFormula, Formula: &Formula{Number: floatPtr(0.5)}}.NumberLike())
	assert.Nil(t, Property{Type: TypeNumber}.NumberLike())
	assert.Nil(t, Property{Type: TypeDate}.NumberLike())
}

func TestPropertyNumberLikeRichText(t *testing.T) {
	p := Property{Type: TypeRichText, RichText: []RichText{{PlainText: "出勤 85.5%"}}}
	require.NotNil(t, p.NumberLike())
	assert.InDelta(t, 85.5, *p.NumberLike(), 1e-9)

	p = Property{Type: TypeRichText, RichText: []RichText{{PlainText: "42"}}}
	require.NotNil(t, p.NumberLike())
	assert.InDelta(t, 42, *p.NumberLike(), 1e-9)

	p = Property{Type: TypeRichText, RichText: []RichText{{PlainText: "不适用"}}}
	assert.Nil(t, p.NumberLike())

	p = Property{Type: TypeRichText}
	assert.Nil(t, p.NumberLike())
}

func TestPropertyDateValue(t *testing.T) {
	start := "2026-03-18T10:00:00+08:00"
	p := Property{Type: TypeDate, Date: &DateRange{Start: &start}}
	got := p.DateValue()
	require.NotNil(t, got.Start)
	assert.Equal(t, start, *got.Start)
	assert.Nil(t, got.End)

	assert.Equal(t, DateRange{}, Property{Type: TypeRichText}.DateValue())
}

func TestPropertyStatusName(t *testing.T) {
	p := Property{Type: TypeStatus, Status: &SelectOption{Name: "进行中"}}
	assert.Equal(t, "进行中", p.StatusName())
	assert.Equal(t, "", Property{Type: TypeSelect, Select: &SelectOption{Name: "进行中"}}.StatusName())
}

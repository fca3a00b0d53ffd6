package ruleengine_test

import (
	"testing"

	"github.com/moottier/ccrev/ruleengine"
	"github.com/stretchr/testify/assert"
)

func TestResolve_HigherPriorityWinsTies(t *testing.T) {
	catalog := ruleengine.DefaultCatalog()
	signals := []ruleengine.Signal{
		{RuleId: 2, Start: 0, End: 8, Positive: true},
		{RuleId: 3, Start: 2, End: 8, Positive: true},
	}

	labels, err := ruleengine.Resolve(signals, catalog, 8)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2, 2, 2}, labels, "rule 3 fully contained in rule 2 must be dropped entirely")
}

func TestResolve_SplitsBothFlanksWhenBothMeetMinimum(t *testing.T) {
	catalog := ruleengine.DefaultCatalog()
	series := make([]float64, 20)
	for i := range series {
		series[i] = 1
	}
	series[10] = 100

	labels, err := ruleengine.Analyze(series, 0, 1, catalog)
	assert.NoError(t, err)

	want := make([]int, 20)
	for i := 0; i < 10; i++ {
		want[i] = 2
	}
	want[10] = 1
	for i := 11; i < 20; i++ {
		want[i] = 2
	}
	assert.Equal(t, want, labels)
}

func TestResolve_DropsFrontFlankWhenTooShort(t *testing.T) {
	catalog := ruleengine.DefaultCatalog()
	series := make([]float64, 16)
	for i := range series {
		series[i] = 1
	}
	series[5] = 100

	labels, err := ruleengine.Analyze(series, 0, 1, catalog)
	assert.NoError(t, err)

	want := make([]int, 16)
	want[5] = 1
	for i := 6; i < 16; i++ {
		want[i] = 2
	}
	assert.Equal(t, want, labels, "front flank of length 5 < rule2 window(8) must be dropped, not shortened")
}

func TestResolve_EmptyInput(t *testing.T) {
	catalog := ruleengine.DefaultCatalog()

	labels, err := ruleengine.Resolve(nil, catalog, 0)
	assert.NoError(t, err)
	assert.Equal(t, []int{}, labels)
}

func TestResolve_InvariantViolation_BadSignalBounds(t *testing.T) {
	catalog := ruleengine.DefaultCatalog()
	signals := []ruleengine.Signal{{RuleId: 1, Start: 5, End: 3}}

	_, err := ruleengine.Resolve(signals, catalog, 10)
	assert.ErrorIs(t, err, ruleengine.ErrInvariantViolation)
}

func TestResolve_InvariantViolation_DuplicateCatalogIds(t *testing.T) {
	catalog := ruleengine.DefaultCatalog()
	catalog[1].Id = catalog[0].Id

	_, err := ruleengine.Resolve(nil, catalog, 0)
	assert.ErrorIs(t, err, ruleengine.ErrInvariantViolation)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories_FixedSet(t *testing.T) {
	cats := Categories()

	assert.Len(t, cats, 5)

	wantOrder := []string{"department", "employee", "project", "green", "knowledge"}
	for i, cat := range cats {
		assert.Equal(t, wantOrder[i], cat.ID)
		assert.NotEmpty(t, cat.Name.AR)
		assert.NotEmpty(t, cat.Name.EN)
		assert.NotEmpty(t, cat.Description.AR)
		assert.NotEmpty(t, cat.Description.EN)
		assert.NotEmpty(t, cat.Icon)
		assert.NotNil(t, cat.Subcategories)
	}
}

func TestCategories_EmployeeSubcategories(t *testing.T) {
	cat, ok := CategoryByID("employee")

	assert.True(t, ok)
	assert.Len(t, cat.Subcategories, 7)

	// Every other category has none.
	for _, other := range Categories() {
		if other.ID == "employee" {
			continue
		}
		assert.Empty(t, other.Subcategories)
	}
}

func TestCategoryByID(t *testing.T) {
	for _, want := range Categories() {
		got, ok := CategoryByID(want.ID)
		assert.True(t, ok)
		assert.Equal(t, want.ID, got.ID)
	}

	_, ok := CategoryByID("does-not-exist")
	assert.False(t, ok)

	_, ok = CategoryByID("")
	assert.False(t, ok)
}

func TestAbout(t *testing.T) {
	about := About()

	assert.Equal(t, "About the Award", about.SectionTitle.EN)
	assert.Len(t, about.Cards, 3)

	keys := []string{"mission", "vision", "values"}
	for i, card := range about.Cards {
		assert.Equal(t, keys[i], card.Key)
		assert.NotEmpty(t, card.Text.AR)
		assert.NotEmpty(t, card.Text.EN)
	}
}

func TestSteps(t *testing.T) {
	steps := Steps()

	assert.Equal(t, "How to Apply", steps.SectionTitle.EN)
	assert.Len(t, steps.Steps, 6)

	for i, step := range steps.Steps {
		assert.Equal(t, i+1, step.Number)
		assert.NotEmpty(t, step.Title.AR)
		assert.NotEmpty(t, step.Description.EN)
	}
}

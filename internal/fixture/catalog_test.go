package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFilenamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range Catalog() {
		if seen[spec.Filename] {
			t.Errorf("duplicate filename in catalog: %s", spec.Filename)
		}
		seen[spec.Filename] = true
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	specs := Catalog()
	require.Len(t, specs, 17, "catalog holds 17 source fixtures; settings and README are separate")

	for _, spec := range specs {
		assert.NotEmpty(t, spec.Filename, "filename")
		assert.NotEmpty(t, spec.Content, "content of %s", spec.Filename)
		assert.NotEmpty(t, spec.Description, "description of %s", spec.Filename)
		assert.NotEmpty(t, Banner(spec.Category), "banner for category %s", spec.Category)
	}
}

func TestCatalogCategoryOrderStable(t *testing.T) {
	// Walking the categories in order must reproduce the catalog exactly:
	// generation emits per category, and emission order is part of the
	// console contract.
	var walked []string
	for _, category := range Categories() {
		for _, spec := range ByCategory(category) {
			walked = append(walked, spec.Filename)
		}
	}

	var direct []string
	for _, spec := range Catalog() {
		direct = append(direct, spec.Filename)
	}
	assert.Equal(t, direct, walked)
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Filename = "mutated.js"
	assert.Equal(t, "basic.js", Catalog()[0].Filename)
}

func TestBannerUnknownCategory(t *testing.T) {
	assert.Empty(t, Banner(Category("Fortran")))
}

func TestCatalogKnownContent(t *testing.T) {
	var py *Spec
	for _, spec := range Catalog() {
		if spec.Filename == "basic.py" {
			py = &spec
			break
		}
	}
	require.NotNil(t, py, "basic.py missing from catalog")
	assert.Equal(t, "def hello():\n    print('Hello, World!')\n\nif __name__ == '__main__':\n    hello()\n", py.Content)
	assert.Equal(t, CategoryPython, py.Category)
}

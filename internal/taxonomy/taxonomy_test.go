package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FlatTaxonomy(t *testing.T) {
	data := []byte(`{"backend": ["Go", "PostgreSQL"], "frontend": ["React", "CSS"]}`)

	tax, err := Parse("test.json", data)

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "postgresql"}, tax["backend"])
	assert.Equal(t, []string{"backend", "frontend"}, tax.Categories())
}

func TestParse_NestedTaxonomy(t *testing.T) {
	data := []byte(`{"engineering": {"backend": ["Go"], "data": ["Spark", "Airflow"]}}`)

	tax, err := Parse("test.json", data)

	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, tax["engineering/backend"])
	assert.Equal(t, []string{"spark", "airflow"}, tax["engineering/data"])
}

func TestParse_SchemaViolation(t *testing.T) {
	data := []byte(`{"backend": 42}`)

	_, err := Parse("test.json", data)

	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "schema violation")
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse("test.json", []byte(`{not json`))

	assert.Error(t, err)
}

func TestCategoriesFor_FiltersByIndustry(t *testing.T) {
	data := []byte(`{"fintech/payments": ["stripe"], "fintech/risk": ["fraud"], "gaming": ["unity"]}`)
	tax, err := Parse("test.json", data)
	require.NoError(t, err)

	assert.Equal(t, []string{"fintech/payments", "fintech/risk"}, tax.CategoriesFor("fintech"))
	assert.Len(t, tax.CategoriesFor(""), 3)
	assert.Empty(t, tax.CategoriesFor("aerospace"))
}

package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	schemafiles "github.com/jonathan/applyday/schemas"
	"github.com/jonathan/applyday/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	schemafiles.Filters,
	schemafiles.Application,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := schemafiles.Read(schemaFile)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Contains(t, schemaObj, "$schema")
			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "properties")

			// An empty document must at least load without a schema error.
			err = schemas.ValidateEmbedded(schemaFile, []byte(`{}`))
			if err != nil {
				_, isLoadErr := err.(*schemas.SchemaLoadError)
				assert.False(t, isLoadErr, "schema should compile: %v", err)
			}
		})
	}
}

func TestEmbeddedMatchesDisk(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		embedded, err := schemafiles.Read(schemaFile)
		require.NoError(t, err)
		onDisk, err := os.ReadFile(schemaFile)
		require.NoError(t, err)
		assert.Equal(t, onDisk, embedded)
	}
}

func TestFiltersSchema_Examples(t *testing.T) {
	valid := `{"searchTerm": "go", "statuses": ["applied", "offered"], "locationTypes": ["remote"], "roleTypes": ["internship"], "sortBy": "status", "sortOrder": "desc"}`
	assert.NoError(t, schemas.ValidateFilters([]byte(valid)))

	for _, invalid := range []string{
		`{"statuses": ["ghosted"]}`,
		`{"sortOrder": "up"}`,
		`{"locationTypes": ["remote", "remote"]}`,
		`{"search": "typo"}`,
	} {
		err := schemas.ValidateFilters([]byte(invalid))
		var validationErr *schemas.ValidationError
		assert.ErrorAs(t, err, &validationErr, invalid)
	}
}

func TestApplicationSchema_RequiredFields(t *testing.T) {
	assert.NoError(t, schemas.ValidateApplication([]byte(`{"company": "Acme", "job_title": "SRE", "stage_notes": null}`)))

	err := schemas.ValidateApplication([]byte(`{"company": "Acme"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_title")
}

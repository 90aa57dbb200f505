package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Ex-Nihilo-0-1/HW-1/feature/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadata = `features:
  outlook: [sunny, overcast, rain]
  humid: ["yes", "no"]
  windy:
    - 0
    - 1
`

func TestReadFeatures(t *testing.T) {
	features, err := yaml.ReadFeatures([]byte(metadata))
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, "outlook", features[0].Name())
	assert.Equal(t, []string{"sunny", "overcast", "rain"}, features[0].AvailableValues())
	assert.Equal(t, "humid", features[1].Name())
	assert.Equal(t, []string{"yes", "no"}, features[1].AvailableValues())
	assert.Equal(t, "windy", features[2].Name())
	assert.Equal(t, []string{"0", "1"}, features[2].AvailableValues())
}

func TestReadFeaturesInvalid(t *testing.T) {
	invalid := map[string]string{
		"no features":   "other: 1\n",
		"not a list":    "features:\n  a: 1\n",
		"not yaml":      "features: [\n",
		"repeated name": "features:\n  a: [1]\n  a: [2]\n",
	}
	for name, doc := range invalid {
		_, err := yaml.ReadFeatures([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestReadFeaturesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, os.WriteFile(path, []byte(metadata), 0o644))
	features, err := yaml.ReadFeaturesFromFile(path)
	require.NoError(t, err)
	assert.Len(t, features, 3)

	_, err = yaml.ReadFeaturesFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

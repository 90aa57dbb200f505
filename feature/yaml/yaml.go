/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/Ex-Nihilo-0-1/HW-1/feature"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value
for this should be an object with a property for each feature with its name and
the list of valid values for it. Features are returned in the order they are
declared.
*/
func ReadFeatures(md []byte) ([]*feature.Feature, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml features")
	}
	if len(metadata.Features) == 0 {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := make([]*feature.Feature, 0, len(metadata.Features))
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		if feature.Find(features, fn) != nil {
			return nil, fmt.Errorf("feature %s declared more than once", fn)
		}
		values, ok := item.Value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid declaration of type %T for feature %s: expected a list of values", item.Value, fn)
		}
		stringVs := make([]string, 0, len(values))
		for _, v := range values {
			stringVs = append(stringVs, fmt.Sprintf("%v", v))
		}
		features = append(features, feature.New(fn, stringVs))
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]*feature.Feature, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading features yml file %s", filepath)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = errors.WithMessagef(err, "parsing features yml file %s", filepath)
	}
	return features, err
}

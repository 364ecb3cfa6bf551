package classify

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RulesFromYAML reads an ordered keyword-set list from YAML. The document
// is a top-level sequence; its order becomes the classification order:
//
//	- name: financial
//	  keywords: [revenue, income, margin]
//	- name: operational
//	  keywords: [subscribers, churn]
//
// The sets are validated with ValidateSets before being returned.
func RulesFromYAML(r io.Reader) ([]KeywordSet, error) {
	var sets []KeywordSet
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("decoding keyword rules: %w", err)
	}
	if err := ValidateSets(sets); err != nil {
		return nil, err
	}
	return sets, nil
}

// RulesFromFile reads keyword rules from a YAML file on disk.
func RulesFromFile(path string) ([]KeywordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keyword rules: %w", err)
	}
	defer f.Close()
	return RulesFromYAML(f)
}

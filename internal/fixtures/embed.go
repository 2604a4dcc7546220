package fixtures

import _ "embed"

// demoDataset is the dataset used when no fixtures file is configured.
//
//go:embed demo.yaml
var demoDataset []byte

// Demo returns a fresh copy of the embedded demo dataset.
func Demo() (*Dataset, error) {
	return Parse(demoDataset)
}

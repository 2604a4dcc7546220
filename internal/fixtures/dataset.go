// Package fixtures serves git data from a YAML dataset, either the embedded
// demo or a user file, and watches that file for changes.
package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

// ErrInvalidDataset is returned when a dataset fails validation.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is the on-disk fixtures format. Details are keyed by full commit
// hash and only carry what CommitInfo does not.
type Dataset struct {
	Commits      []domain.CommitInfo            `yaml:"commits"`
	Details      map[string]domain.CommitDetail `yaml:"details"`
	PullRequests []domain.PullRequest           `yaml:"pull_requests"`
	GitConfig    domain.GitConfig               `yaml:"git_config"`
}

// Decode reads and validates a dataset. Unknown keys are rejected so typos
// in hand-written files surface instead of silently dropping data.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Parse is Decode over a byte slice.
func Parse(data []byte) (*Dataset, error) {
	return Decode(bytes.NewReader(data))
}

// Validate checks hashes, pull request states and that every detail belongs
// to a listed commit.
func (ds *Dataset) Validate() error {
	var errs []error
	known := make(map[string]bool, len(ds.Commits))
	for i, c := range ds.Commits {
		if err := domain.ValidateHash(c.Hash); err != nil {
			errs = append(errs, fmt.Errorf("commits[%d]: %w", i, err))
		}
		known[c.Hash] = true
	}
	for h := range ds.Details {
		if !known[h] {
			errs = append(errs, fmt.Errorf("details: %s is not in commits: %w", h, domain.ErrCommitNotFound))
		}
	}
	seen := make(map[int]bool, len(ds.PullRequests))
	for i, pr := range ds.PullRequests {
		if err := pr.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("pull_requests[%d]: %w", i, err))
		}
		if seen[pr.Number] {
			errs = append(errs, fmt.Errorf("pull_requests[%d]: duplicate number %d", i, pr.Number))
		}
		seen[pr.Number] = true
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return nil
}

// Detail returns the full detail of a listed commit. A commit without a
// details entry gets empty stats and files.
func (ds *Dataset) Detail(hash string) (domain.CommitDetail, error) {
	for _, c := range ds.Commits {
		if c.Hash != hash {
			continue
		}
		d := ds.Details[hash]
		d.CommitInfo = c
		return d, nil
	}
	return domain.CommitDetail{}, fmt.Errorf("%s: %w", hash, domain.ErrCommitNotFound)
}

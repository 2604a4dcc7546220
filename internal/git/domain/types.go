// Package domain holds the git entities rendered by the panels. Values are
// supplied by the host and treated as immutable.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// CommitInfo holds information about a git commit.
type CommitInfo struct {
	Hash        string `yaml:"hash" json:"hash"`                                     // Full 40-char SHA
	Message     string `yaml:"message" json:"message"`                               // Full, possibly multi-line message
	Author      string `yaml:"author" json:"author"`                                 // Author name
	AuthorEmail string `yaml:"author_email,omitempty" json:"author_email,omitempty"` // Optional
	Date        string `yaml:"date" json:"date"`                                     // ISO-8601 timestamp
}

// ShortHashLen is the number of hash characters shown in compact views.
const ShortHashLen = 8

// ShortHash returns the first ShortHashLen characters of the hash.
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) <= ShortHashLen {
		return c.Hash
	}
	return c.Hash[:ShortHashLen]
}

// HashLen is the length of a full SHA-1 commit hash.
const HashLen = 40

// ValidateHash checks that h is a full lowercase hex commit hash.
func ValidateHash(h string) error {
	if len(h) != HashLen {
		return fmt.Errorf("%q has %d characters: %w", h, len(h), ErrInvalidHash)
	}
	for _, r := range h {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return fmt.Errorf("%q: %w", h, ErrInvalidHash)
		}
	}
	return nil
}

// Subject returns the first line of the commit message.
func (c CommitInfo) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}

// Body returns the message without its subject line, trimmed of the blank
// separator lines git inserts.
func (c CommitInfo) Body() string {
	_, body, found := strings.Cut(c.Message, "\n")
	if !found {
		return ""
	}
	return strings.Trim(body, "\n")
}

// Time returns the parsed commit date. ok is false when Date is missing or
// malformed.
func (c CommitInfo) Time() (time.Time, bool) {
	return ParseTimestamp(c.Date)
}

// FileStatus is the change kind of a file in a commit.
type FileStatus string

const (
	FileAdded    FileStatus = "added"
	FileModified FileStatus = "modified"
	FileRemoved  FileStatus = "removed"
	FileRenamed  FileStatus = "renamed"
)

// CommitStats summarizes line changes in a commit.
type CommitStats struct {
	Additions int `yaml:"additions" json:"additions"`
	Deletions int `yaml:"deletions" json:"deletions"`
	Total     int `yaml:"total" json:"total"`
}

// FileChange describes one file touched by a commit.
type FileChange struct {
	Filename         string     `yaml:"filename" json:"filename"`
	Status           FileStatus `yaml:"status" json:"status"`
	Additions        int        `yaml:"additions" json:"additions"`
	Deletions        int        `yaml:"deletions" json:"deletions"`
	Changes          int        `yaml:"changes" json:"changes"`
	PreviousFilename string     `yaml:"previous_filename,omitempty" json:"previous_filename,omitempty"`
}

// CommitDetail is a commit with its stats and file list.
type CommitDetail struct {
	CommitInfo `yaml:",inline"`
	HTMLURL    string       `yaml:"html_url,omitempty" json:"html_url,omitempty"`
	Stats      CommitStats  `yaml:"stats" json:"stats"`
	Files      []FileChange `yaml:"files" json:"files"`
}

// BranchInfo holds information about a git branch.
type BranchInfo struct {
	Name      string `yaml:"name" json:"name"`                                 // Branch name (e.g., "main", "feature/auth")
	IsCurrent bool   `yaml:"is_current,omitempty" json:"is_current,omitempty"` // True if this is the currently checked out branch
	Upstream  string `yaml:"upstream,omitempty" json:"upstream,omitempty"`
}

// RemoteInfo holds a configured remote.
type RemoteInfo struct {
	Name     string `yaml:"name" json:"name"`
	FetchURL string `yaml:"fetch_url" json:"fetch_url"`
	PushURL  string `yaml:"push_url,omitempty" json:"push_url,omitempty"`
}

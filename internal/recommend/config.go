// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package recommend

import "fmt"

// Config controls optional generator behavior. The zero value reproduces the
// plain scan-score-filter-sort pipeline.
type Config struct {
	// MaxResults truncates the sorted list. 0 means unlimited.
	MaxResults int `json:"max_results"`

	// LanguagePrefilter loads candidates through the store's language index.
	LanguagePrefilter bool `json:"language_prefilter"`

	// ExcludeMatched hides users already in a live match with the requester.
	ExcludeMatched bool `json:"exclude_matched"`
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("max_results must be >= 0, got %d", c.MaxResults)
	}
	return nil
}

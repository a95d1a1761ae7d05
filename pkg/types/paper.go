// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper holds the metadata of an academic paper as delivered by an upstream
// source connector. Per prd001-pipeline R2.1, the only fields the pipeline
// requires are Title, Authors, and Abstract; everything else is optional.
type Paper struct {
	// DOI is the stable identity key. May be empty, in which case the
	// deduplicator derives a content hash from the normalized title.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year. Zero means unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL points at the publisher or preprint page.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Source identifies which connector found the paper (e.g. "arxiv", "semantic_scholar").
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// TRL is the classified technology readiness level (1-9). Zero until
	// the maturity classifier has run.
	TRL int `json:"trl,omitempty" yaml:"trl,omitempty"`

	// TRLConfidence is the classification confidence in [0,1].
	TRLConfidence float64 `json:"trl_confidence,omitempty" yaml:"trl_confidence,omitempty"`

	// TRLJustification is the deterministic, human-readable reasoning
	// behind the classification.
	TRLJustification string `json:"trl_justification,omitempty" yaml:"trl_justification,omitempty"`
}

// PatentStatus is the legal status of a patent application.
type PatentStatus string

const (
	PatentGranted PatentStatus = "Granted"
	PatentPending PatentStatus = "Pending"
)

// Patent holds the metadata of a patent as delivered by an upstream source
// connector. PatentNumber is the identity key.
type Patent struct {
	// PatentNumber is the office-assigned number (e.g. "US10892345B2").
	PatentNumber string `json:"patent_number" yaml:"patent_number"`

	// Title is the patent title.
	Title string `json:"title" yaml:"title"`

	// Abstract is the patent abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Applicant is the filing organization or person.
	Applicant string `json:"applicant,omitempty" yaml:"applicant,omitempty"`

	// FilingDate is the ISO date string (YYYY-MM-DD). Zero-padded, so
	// lexicographic comparison orders chronologically.
	FilingDate string `json:"filing_date,omitempty" yaml:"filing_date,omitempty"`

	// Status is the legal status: Granted, Pending, or an office-specific value.
	Status PatentStatus `json:"status,omitempty" yaml:"status,omitempty"`

	// Office is the patent office or region (e.g. "EPO", "USPTO").
	Office string `json:"office,omitempty" yaml:"office,omitempty"`

	// IPCClasses lists the International Patent Classification codes.
	IPCClasses []string `json:"ipc_classes,omitempty" yaml:"ipc_classes,omitempty"`

	// URL points at the patent register entry.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// TRL is the classified technology readiness level (1-9). Zero until
	// the maturity classifier has run.
	TRL int `json:"trl,omitempty" yaml:"trl,omitempty"`

	// TRLConfidence is the classification confidence in [0,1].
	TRLConfidence float64 `json:"trl_confidence,omitempty" yaml:"trl_confidence,omitempty"`

	// TRLJustification is the deterministic, human-readable reasoning
	// behind the classification.
	TRLJustification string `json:"trl_justification,omitempty" yaml:"trl_justification,omitempty"`
}

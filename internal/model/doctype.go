// Package model holds the data types shared across the composition
// pipeline: document types, signature records, layout blocks, pages,
// formatting rules and the pipeline result descriptor.
package model

import (
	"fmt"

	"github.com/chinmay-sawant/legalcompose/internal/errs"
)

// DocumentType is the closed set of legal-document kinds the engine
// understands. Any other value is a fatal INVALID_DOCUMENT_TYPE input
// error at the boundary.
type DocumentType string

const (
	ProvisionalPatentApplication DocumentType = "provisional-patent-application"
	OfficeActionResponse         DocumentType = "office-action-response"
	TrademarkApplication         DocumentType = "trademark-application"
	PatentAssignmentAgreement    DocumentType = "patent-assignment-agreement"
	NDAIPSpecific                DocumentType = "nda-ip-specific"
	PatentLicenseAgreement       DocumentType = "patent-license-agreement"
	TechnologyTransferAgreement  DocumentType = "technology-transfer-agreement"
	CeaseAndDesistLetter         DocumentType = "cease-and-desist-letter"
)

// knownDocumentTypes is the closed set against which Valid checks.
var knownDocumentTypes = map[DocumentType]struct{}{
	ProvisionalPatentApplication: {},
	OfficeActionResponse:         {},
	TrademarkApplication:         {},
	PatentAssignmentAgreement:    {},
	NDAIPSpecific:                {},
	PatentLicenseAgreement:       {},
	TechnologyTransferAgreement:  {},
	CeaseAndDesistLetter:         {},
}

// Valid reports whether dt is one of the eight recognized document types.
func (dt DocumentType) Valid() bool {
	_, ok := knownDocumentTypes[dt]
	return ok
}

func (dt DocumentType) String() string {
	return string(dt)
}

// ParseDocumentType validates a caller-supplied string against the
// closed document-type set.
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(s)
	if !dt.Valid() {
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidDocumentType, s)
	}
	return dt, nil
}

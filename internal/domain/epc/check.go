package epc

import (
	"strings"

	"github.com/breutech/epcqr/internal/domain/iban"
	"github.com/breutech/epcqr/internal/domain/ogm"
	"github.com/breutech/epcqr/internal/domain/reference"
	"github.com/breutech/epcqr/internal/domain/validation"
)

// CheckIssue locates one schema violation in a pasted payload. Line is
// 1-based; 0 means the payload as a whole.
type CheckIssue struct {
	Line  int
	Field string
	Code  validation.Code
}

// CheckReport is a diagnostic over a raw payload. Unlike the
// assembler it aggregates every issue found, since its purpose is to
// explain a broken paste, not to gate generation.
type CheckReport struct {
	Valid bool
	// RepairedTrailingLine is set when an 11-line payload was patched
	// with the implied empty information field, the usual symptom of
	// copying text without the final newline.
	RepairedTrailingLine bool
	// OGMDetected is set when the remittance line carries a Belgian
	// structured communication.
	OGMDetected bool
	Issues      []CheckIssue
}

var headerSchema = []struct {
	field    string
	expected string
}{
	{"service_tag", ServiceTag},
	{"version", Version},
	{"char_set", CharSet},
	{"identification", Identification},
}

// CheckPayload parses raw as an EPC payload and reports every schema
// violation it finds.
func CheckPayload(raw string, registry Registry) CheckReport {
	var report CheckReport

	lines := strings.Split(raw, "\n")
	if len(lines) == payloadLineCount-1 {
		// The usual copy-paste symptom: the final newline (and with it
		// the empty information field) did not make it into the paste.
		lines = append(lines, "")
		report.RepairedTrailingLine = true
	}
	for len(lines) > payloadLineCount && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > payloadLineCount {
		report.Issues = append(report.Issues, CheckIssue{Line: 0, Field: "payload", Code: validation.CodeMalformedStructure})
		return report
	}
	// Trailing blank lines may legitimately be omitted on emit; pad
	// them back so the schema indexes line up.
	for len(lines) < payloadLineCount {
		lines = append(lines, "")
	}

	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	for i, h := range headerSchema {
		if lines[i] != h.expected {
			report.Issues = append(report.Issues, CheckIssue{Line: i + 1, Field: h.field, Code: validation.CodeMalformedStructure})
		}
	}

	if lines[5] == "" {
		report.Issues = append(report.Issues, CheckIssue{Line: 6, Field: FieldName, Code: validation.CodeRequiredFieldMissing})
	}

	if err := iban.Validate(lines[6]); err != nil {
		report.Issues = append(report.Issues, issueFromError(7, err))
	}

	if amt := lines[7]; amt != "" && !strings.HasPrefix(amt, Currency) {
		report.Issues = append(report.Issues, CheckIssue{Line: 8, Field: FieldAmount, Code: validation.CodeMalformedStructure})
	}

	if purpose := lines[8]; purpose != "" && !registry.Contains(purpose) {
		report.Issues = append(report.Issues, CheckIssue{Line: 9, Field: FieldPurpose, Code: validation.CodeUnknownPurposeCode})
	}

	if ref := lines[9]; ref != "" {
		if lines[10] != "" {
			report.Issues = append(report.Issues, CheckIssue{Line: 10, Field: FieldReference, Code: validation.CodeConflictingReference})
		}
		if err := reference.Validate(ref); err != nil {
			report.Issues = append(report.Issues, issueFromError(10, err))
		}
	}

	report.OGMDetected = ogm.IsFormatted(lines[10])
	report.Valid = len(report.Issues) == 0
	return report
}

func issueFromError(line int, err error) CheckIssue {
	if verr, ok := err.(*validation.Error); ok {
		return CheckIssue{Line: line, Field: verr.Field, Code: verr.Code}
	}
	return CheckIssue{Line: line, Field: "payload", Code: validation.CodeMalformedStructure}
}

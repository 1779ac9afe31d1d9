package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004

	// syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectType         Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectPattern      Code = 2005
	SynUnexpectedTopLevel Code = 2006
	SynExpectKeyword      Code = 2007
	SynUnclosedDelimiter  Code = 2008

	// naming
	SemaInfo                 Code = 3000
	SemaUnboundName          Code = 3001
	SemaMultipleDefinition   Code = 3002
	SemaUnsatisfiedSignature Code = 3003

	// I/O
	IOLoadFileError Code = 4001

	// project
	ProjInfo          Code = 5000
	ProjBadManifest   Code = 5001
	ProjNoSources     Code = 5002
	ProjMissingSource Code = 5003

	// observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexInfo:                  "Lexical information",
	LexUnknownChar:           "Unknown character",
	LexUnterminatedString:    "Unterminated string",
	LexUnterminatedComment:   "Unterminated comment",
	LexBadNumber:             "Bad number",
	SynInfo:                  "Syntax information",
	SynUnexpectedToken:       "Unexpected token",
	SynExpectIdentifier:      "Expected identifier",
	SynExpectType:            "Expected type",
	SynExpectExpression:      "Expected expression",
	SynExpectPattern:         "Expected pattern",
	SynUnexpectedTopLevel:    "Unexpected top-level construct",
	SynExpectKeyword:         "Expected keyword",
	SynUnclosedDelimiter:     "Unclosed delimiter",
	SemaInfo:                 "Naming information",
	SemaUnboundName:          "Unbound name",
	SemaMultipleDefinition:   "Multiple definition",
	SemaUnsatisfiedSignature: "Unsatisfied signature",
	IOLoadFileError:          "I/O load file error",
	ProjInfo:                 "Project information",
	ProjBadManifest:          "Invalid lumen.toml",
	ProjNoSources:            "No source files",
	ProjMissingSource:        "Missing source file",
	ObsInfo:                  "Observability information",
	ObsTimings:               "Pipeline timings",
}

// ID returns the stable textual identifier, e.g. SEM3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

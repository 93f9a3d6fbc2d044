package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynExpectSemicolon    Code = 2012
	SynExpectIdentifier   Code = 2102
	SynUnexpectedTopLevel Code = 2101
	SynExpectType         Code = 2202
	SynExpectExpression   Code = 2203
	SynExpectColon        Code = 2204
	SynExpectBlock        Code = 2205
	SynBadSlotIndex       Code = 2206
	SynBadSlotDirection   Code = 2207
	SynStatementInValue   Code = 2208
	SynBadAssignTarget    Code = 2209

	// Конструкции хост-грамматики, которые DSL не поддерживает
	SynUnsupportedModifier    Code = 2501
	SynUnsupportedItem        Code = 2502
	SynUnsupportedControlFlow Code = 2503
	SynUnsupportedPattern     Code = 2504
	SynUnsupportedTuple       Code = 2505
	SynUnsupportedGeneric     Code = 2506
	SynUnsupportedExpr        Code = 2507
	SynUnsupportedPath        Code = 2508
	SynUnsupportedAttribute   Code = 2509

	SynUnknownNamespace Code = 2601

	SynUnknownType Code = 2701

	// Семантические
	SemaInfo        Code = 3000
	SemaVoidBinding Code = 3001

	// Backend
	BckInfo          Code = 4000
	BckCompileFailed Code = 4001
	BckToolNotFound  Code = 4002

	// IO
	IOLoadFileError  Code = 5001
	IOWriteFileError Code = 5002

	// Project
	ProjInfo             Code = 6000
	ProjManifestNotFound Code = 6001
	ProjManifestInvalid  Code = 6002
	ProjMissingName      Code = 6003
	ProjNoShaders        Code = 6004
	ProjBadShaderKind    Code = 6005
	ProjBadBackend       Code = 6006
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedDelimiter:        "Unclosed delimiter",
		SynExpectSemicolon:          "Expected semicolon",
		SynExpectIdentifier:         "Expected identifier",
		SynUnexpectedTopLevel:       "Unexpected top-level construct",
		SynExpectType:               "Expected type",
		SynExpectExpression:         "Expected expression",
		SynExpectColon:              "Expected colon",
		SynExpectBlock:              "Expected block",
		SynBadSlotIndex:             "Invalid interface slot index",
		SynBadSlotDirection:         "Invalid interface slot direction",
		SynStatementInValue:         "Statement expression used as a value",
		SynBadAssignTarget:          "Invalid assignment target",
		SynUnsupportedModifier:      "Unsupported modifier",
		SynUnsupportedItem:          "Unsupported item",
		SynUnsupportedControlFlow:   "Unsupported control flow",
		SynUnsupportedPattern:       "Unsupported pattern",
		SynUnsupportedTuple:         "Tuples are not supported",
		SynUnsupportedGeneric:       "Generics are not supported",
		SynUnsupportedExpr:          "Unsupported expression",
		SynUnsupportedPath:          "Unsupported path",
		SynUnsupportedAttribute:     "Attributes are not supported",
		SynUnknownNamespace:         "Unknown identifier namespace",
		SynUnknownType:              "Unknown type",
		SemaInfo:                    "Semantic information",
		SemaVoidBinding:             "Binding resolved to void",
		BckInfo:                     "Backend information",
		BckCompileFailed:            "Shader compilation failed",
		BckToolNotFound:             "Shader compiler not found",
		IOLoadFileError:             "I/O load file error",
		IOWriteFileError:            "I/O write file error",
		ProjInfo:                    "Project information",
		ProjManifestNotFound:        "Project manifest not found",
		ProjManifestInvalid:         "Invalid project manifest",
		ProjMissingName:             "Project name is missing",
		ProjNoShaders:               "Project has no shaders",
		ProjBadShaderKind:           "Unknown shader kind",
		ProjBadBackend:              "Unknown backend compiler",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("BCK%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

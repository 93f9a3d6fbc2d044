package driver

import (
	"yasl/internal/diag"
	"yasl/internal/lexer"
	"yasl/internal/source"
	"yasl/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the whole file. Unlike the rest of the pipeline the lexer
// keeps going after errors, so Bag may hold more than one diagnostic.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, loadError(path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

func loadError(path string, err error) error {
	return diag.Unanchored(diag.IOLoadFileError, "failed to load "+path+": "+err.Error())
}

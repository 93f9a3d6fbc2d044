package parser

import (
	"yasl/internal/ast"
	"yasl/internal/diag"
	"yasl/internal/lexer"
	"yasl/internal/source"
	"yasl/internal/token"
)

// DefaultPrefix is prepended to every plain user identifier.
const DefaultPrefix = "yasl_"

type Options struct {
	Reporter diag.Reporter
	// Prefix overrides DefaultPrefix when non-empty.
	Prefix string
}

type Result struct {
	File ast.FileID
	// Failed is set once the first error was reported; parsing stops there.
	Failed bool
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	failed   bool
}

// ParseFile parses one compilation unit. The parser is fail-fast: the first
// reported error ends the parse, and Result.Failed tells the caller so.
func ParseFile(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	start := lx.Peek().Span
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(start),
		opts:     opts,
		lastSpan: source.Span{File: start.File},
	}
	p.parseItems()
	return Result{File: p.file, Failed: p.failed}
}

// Parse lexes and parses file with a single-error budget and returns the
// first lexical or syntax error.
func Parse(file *source.File, arenas *ast.Builder, prefix string) (ast.FileID, error) {
	bag := diag.NewBag(1)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := ParseFile(lx, arenas, Options{Reporter: rep, Prefix: prefix})
	if err := bag.FirstError(); err != nil {
		return res.File, err
	}
	return res.File, nil
}

// parseItems: основной цикл верхнего уровня: пока не EOF - parseItem.
func (p *Parser) parseItems() {
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			return
		}
		p.arenas.PushItem(p.file, itemID)
	}
	f := p.arenas.Files.Get(p.file)
	f.Span = f.Span.Cover(p.lx.Peek().Span)
}

// parseItem выбирает по первому токену нужный распознаватель item'а.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwStatic:
		return p.parseStaticItem()
	case token.KwLayout:
		return p.parseSlotItem()
	case token.KwFn:
		return p.parseFnItem()
	}
	if p.rejectReserved(tok) {
		return ast.NoItemID, false
	}
	p.report(diag.SynUnexpectedTopLevel, tok.Span,
		"expected 'fn', 'static' or 'layout', got "+describe(tok))
	return ast.NoItemID, false
}

// isItemStart reports whether k begins an item inside a block.
func isItemStart(k token.Kind) bool {
	switch k {
	case token.KwStatic, token.KwLayout, token.KwFn:
		return true
	}
	return false
}

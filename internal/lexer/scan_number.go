package lexer

import (
	"strconv"
	"strings"

	"yasl/internal/diag"
	"yasl/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.0, 1., .5, 1e-3, 1.0e+10.
// Суффиксы (1u32, 2.0f32) не поддерживаются и репортятся как LexBadNumber.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	switch {
	case lx.cursor.Peek() == '.':
		// ".5"
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.eatDigits(isDec)
		return lx.finishNumber(lx.scanExponent(start, kind), start)

	case lx.cursor.Peek() == '0' && isRadixByte(lx.cursor.PeekAt(1)):
		lx.cursor.Bump()
		radix := lx.cursor.Bump()
		var digit func(byte) bool
		switch radix {
		case 'b', 'B':
			digit = isBin
		case 'o', 'O':
			digit = isOct
		default:
			digit = isHex
		}
		if !digit(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after radix prefix")
			return lx.emit(token.Invalid, start)
		}
		lx.eatDigits(digit)
		return lx.finishNumber(kind, start)
	}

	lx.eatDigits(isDec)

	// дробная часть; "1..2" и "1.x" оставляем парсеру
	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		if next != '.' && !isIdentStartByte(next) && next < utf8RuneSelf {
			lx.cursor.Bump()
			kind = token.FloatLit
			if isDec(lx.cursor.Peek()) {
				lx.eatDigits(isDec)
			}
		}
	}

	return lx.finishNumber(lx.scanExponent(start, kind), start)
}

func (lx *Lexer) scanExponent(start Mark, kind token.Kind) token.Kind {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return kind
	}
	save := lx.cursor.Mark()
	lx.cursor.Bump()
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
		lx.cursor.Reset(save)
		return token.Invalid
	}
	lx.eatDigits(isDec)
	return token.FloatLit
}

// finishNumber rejects identifier characters glued to the literal and
// integers wider than 32 bits.
func (lx *Lexer) finishNumber(kind token.Kind, start Mark) token.Token {
	if kind != token.Invalid && isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "literal suffixes are not supported")
		kind = token.Invalid
	}
	if kind == token.IntLit {
		sp := lx.cursor.SpanFrom(start)
		if !fitsInt32Bits(string(lx.cursor.File.Content[sp.Start:sp.End])) {
			lx.errLex(diag.LexBadNumber, sp, "integer literal does not fit in 32 bits")
			kind = token.Invalid
		}
	}
	return lx.emit(kind, start)
}

// fitsInt32Bits: в GLSL int и uint 32-битные; hex до 0xFFFFFFFF допустим.
func fitsInt32Bits(text string) bool {
	clean := strings.ReplaceAll(text, "_", "")
	base := 10
	if len(clean) > 2 && clean[0] == '0' {
		switch clean[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
		if base != 10 {
			clean = clean[2:]
		}
	}
	_, err := strconv.ParseUint(clean, base, 32)
	return err == nil
}

func (lx *Lexer) eatDigits(digit func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if !digit(b) && b != '_' {
			return
		}
		lx.cursor.Bump()
	}
}

// Package fuzztests holds Go fuzz harnesses for the YASL front end
// (source -> lexer -> parser -> resolve -> GLSL + line map). They guard
// against panics, hangs and line maps that disagree with the emitted text.
//
// Запуск: go test ./internal/fuzz -fuzz=FuzzEmit
package fuzztests

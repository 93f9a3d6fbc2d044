// Package token defines lexical token kinds and trivia for the YASL front end.
// Invariants:
//   - Token.Text is the exact source text of Token.Span.
//   - Scalar and vector type names (f32, i32, vec3, ...) are identifiers.
//     They are recognised by the parser, not the lexer.
//   - 'input' and 'output' are identifiers; they are only meaningful inside
//     a layout<...> header.
//   - Host keywords the DSL does not support (pub, struct, while, ...) get
//     their own kinds so the parser can name the rejected construct.
package token

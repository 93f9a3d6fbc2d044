// Package backend wraps the external GLSL-to-SPIR-V compilers.
//
// Назначение: один вызов компилятора на шейдер: текст и стадия на вход,
// SPIR-V или лог ошибок на выход.
// Не делает: перевод строк лога в YASL-позиции (см. internal/sourcemap).
package backend

// Package glsl lowers a checked YASL AST to GLSL source.
//
// Назначение: построить дерево фрагментов из строк с привязкой к span'ам
// исходника и отрендерить его в текст шейдера с преамбулой и точкой входа.
// Не делает: разбор, вывод типов, вызов компилятора.
// Зависимости: internal/ast, internal/sema, internal/types, internal/source.
package glsl

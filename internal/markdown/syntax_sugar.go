// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package markdown

import "fmt"

func Italic(text string) string {
	return fmt.Sprintf("*%s*", text)
}

// Code оборачивает текст в обратные кавычки; вертикальная черта экранируется, чтобы не ломать таблицы.
func Code(text string) string {
	return fmt.Sprintf("`%s`", escapePipe(text))
}

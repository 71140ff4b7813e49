package cv

import "strings"

// Assemble wraps template markup and its stylesheet into a minimal
// self-contained HTML document. By contract only sanitized markup reaches
// this stage; no validation or escaping happens here.
func Assemble(markup Markup, styles Stylesheet) Document {
	var b strings.Builder
	b.Grow(len(markup) + len(styles) + 256)

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<style>\n")
	b.WriteString(string(styles))
	b.WriteString("\n</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(string(markup))
	b.WriteString("\n</body>\n</html>\n")

	return Document(b.String())
}

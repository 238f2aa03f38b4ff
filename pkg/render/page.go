package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
)

const pageCSS = `
    body { margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; background: #fafafa; color: #222; }
    h1.title { font-size: 16px; font-weight: 600; margin: 0 0 8px 0; }
    .canvas { display: inline-block; background: #fff; border: 1px solid #ddd; }`

// Page is a standalone HTML document wrapping a rendered body.
type Page struct {
	Title  string
	Style  string // extra CSS rules
	Body   []byte // trusted markup, written verbatim
	Script string // inline JavaScript, optional
}

// WritePage writes p as a complete HTML document.
func WritePage(w io.Writer, p Page) error {
	var buf bytes.Buffer
	title := html.EscapeString(p.Title)

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "  <title>%s</title>\n", title)
	fmt.Fprintf(&buf, "  <style>%s%s\n  </style>\n", pageCSS, p.Style)
	buf.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&buf, "  <h1 class=\"title\">%s</h1>\n", title)
	buf.WriteString("  <div class=\"canvas\">\n")
	buf.Write(p.Body)
	buf.WriteString("  </div>\n")
	if p.Script != "" {
		fmt.Fprintf(&buf, "  <script>%s\n  </script>\n", p.Script)
	}
	buf.WriteString("</body>\n</html>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

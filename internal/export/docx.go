package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultDocxName is the filename used when the caller does not pick one.
const DefaultDocxName = "representative-letter.docx"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// Paragraphs splits letter content into document paragraphs: one per
// non-empty line, blank lines dropped.
func Paragraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// WriteDocx serializes the letter into a minimal WordprocessingML package:
// 12pt runs (sz is in half-points) with 200-twip spacing after each
// paragraph.
func WriteDocx(w io.Writer, content string) error {
	zw := zip.NewWriter(w)
	parts := []struct {
		name, body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(Paragraphs(content))},
	}
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return err
		}
		if _, err := fw.Write([]byte(p.body)); err != nil {
			return err
		}
	}
	return zw.Close()
}

func documentXML(paragraphs []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:pPr><w:spacing w:after="200"/></w:pPr><w:r><w:rPr><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr><w:t xml:space="preserve">`)
		var esc bytes.Buffer
		_ = xml.EscapeText(&esc, []byte(p))
		b.Write(esc.Bytes())
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}

// DownloadDocx writes the letter as a .docx file at path, defaulting to
// DefaultDocxName in the working directory.
func DownloadDocx(content, path string) bool {
	if path == "" {
		path = DefaultDocxName
	}
	f, err := os.Create(path)
	if err != nil {
		slog.Warn("docx export failed", "error", err, "path", path)
		return false
	}
	defer f.Close()
	if err := WriteDocx(f, content); err != nil {
		slog.Warn("docx export failed", "error", err, "path", path)
		return false
	}
	return true
}

// Package parse extracts plain UTF-8 text from document files. It is the
// ingestion collaborator in front of the analysis engine: every failure
// kind here (missing file, unsupported format, corrupt container) is
// reported before the engine ever runs.
package parse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// SupportedFormats lists the file extensions the parser accepts.
var SupportedFormats = []string{".txt", ".pdf", ".docx", ".html"}

// Parser extracts text from supported document formats.
type Parser struct{}

// NewParser creates a document parser.
func NewParser() *Parser {
	return &Parser{}
}

// Supported reports whether the file extension is a parseable format.
func (p *Parser) Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedFormats {
		if ext == s {
			return true
		}
	}
	return false
}

// Parse reads the file and returns its plain text content.
func (p *Parser) Parse(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("stat document: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return p.parseTxt(path)
	case ".pdf":
		return p.parsePDF(path)
	case ".docx":
		return p.parseDocx(path)
	case ".html", ".htm":
		return p.parseHTML(path)
	default:
		return "", fmt.Errorf("unsupported file format %q (supported: %s)", ext, strings.Join(SupportedFormats, ", "))
	}
}

func (p *Parser) parseTxt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}

func (p *Parser) parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	body, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return "", fmt.Errorf("read PDF text: %w", err)
	}
	return buf.String(), nil
}

// parseDocx reads word/document.xml from the docx container and collects
// the text runs, one paragraph per line.
func (p *Parser) parseDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()
		return docxText(rc)
	}
	return "", fmt.Errorf("invalid docx: word/document.xml missing")
}

func docxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inRun := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

// parseHTML extracts visible text, skipping script/style subtrees and
// inserting line breaks at block boundaries so segment detection still
// sees headings as their own lines.
func (p *Parser) parseHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open HTML: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "br":
				b.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElement(n.Data) {
			b.WriteString("\n")
		}
	}
	walk(doc)

	return b.String(), nil
}

func blockElement(tag string) bool {
	switch tag {
	case "p", "div", "li", "tr", "section", "article",
		"h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

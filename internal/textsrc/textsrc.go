package textsrc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cognicore/yixiang/pkg/yixiang/internalerr"
)

// DefaultMaxSize is the upload limit used when none is configured.
const DefaultMaxSize int64 = 10 << 20

// Format is a supported document format.
type Format string

const (
	FormatText Format = "txt"
	FormatHTML Format = "html"
	FormatDocx Format = "docx"
)

// Document is a source file reduced to plain text.
type Document struct {
	Name   string `json:"name"`
	Format Format `json:"format"`
	Text   string `json:"text"`
}

// Reader converts documents to text, rejecting files above MaxSize.
type Reader struct {
	MaxSize int64
}

// New creates a Reader; maxSize <= 0 means DefaultMaxSize.
func New(maxSize int64) *Reader {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Reader{MaxSize: maxSize}
}

// FormatOf picks the format from a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", "":
		return FormatText, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".docx":
		return FormatDocx, nil
	}
	return "", fmt.Errorf("unsupported file type %q: %w", filepath.Ext(name), internalerr.ErrInvalidInput)
}

// ReadFile reads and converts the file at path.
func (r *Reader) ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return r.Read(filepath.Base(path), f)
}

// Read converts the content of src, using name to choose the format.
func (r *Reader) Read(name string, src io.Reader) (Document, error) {
	format, err := FormatOf(name)
	if err != nil {
		return Document{}, err
	}

	data, err := io.ReadAll(io.LimitReader(src, r.MaxSize+1))
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(data)) > r.MaxSize {
		return Document{}, fmt.Errorf("%s exceeds %d bytes: %w", name, r.MaxSize, internalerr.ErrInvalidInput)
	}

	var text string
	switch format {
	case FormatHTML:
		text, err = htmlText(data)
	case FormatDocx:
		text, err = docxText(data)
	default:
		text = plainText(data)
	}
	if err != nil {
		return Document{}, fmt.Errorf("convert %s: %w", name, err)
	}

	return Document{Name: name, Format: format, Text: text}, nil
}

func plainText(data []byte) string {
	return string(bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF")))
}

var htmlBlocks = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Tr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Pre: true, atom.Blockquote: true, atom.Section: true, atom.Article: true,
}

// htmlText keeps visible text, ending a line after each block element.
func htmlText(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Head, atom.Script, atom.Style:
				return
			case atom.Br:
				buf.WriteByte('\n')
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && htmlBlocks[n.DataAtom] {
			buf.WriteByte('\n')
		}
	}
	extractText(doc)

	return trimLines(buf.String()), nil
}

// docxText writes one line per body paragraph, reading table cells in
// row order. Runs keep their tabs and line breaks.
func docxText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("not a docx archive: %v: %w", err, internalerr.ErrInvalidInput)
	}

	var buf strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch o := item.(type) {
		case *docx.Paragraph:
			buf.WriteString(o.String())
			buf.WriteByte('\n')
		case *docx.Table:
			for _, row := range o.TableRows {
				for _, cell := range row.TableCells {
					for _, p := range cell.Paragraphs {
						buf.WriteString(p.String())
						buf.WriteByte('\n')
					}
				}
			}
		}
	}

	text := trimLines(buf.String())
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("docx has no text: %w", internalerr.ErrInvalidInput)
	}
	return text, nil
}

// trimLines trims every line and drops trailing blank lines.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

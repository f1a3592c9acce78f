package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/net/html/charset"
)

// gzipMagic is the two-byte header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// Load reads a MEDLINE/PubMed XML file into an element tree. Gzip-compressed
// files, the form NLM ships baseline and update files in, are decompressed
// transparently; detection is by content, not file name.
func Load(path string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open medline xml: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one XML document from r, decompressing a gzip stream when the
// magic bytes announce one.
func Parse(r io.Reader) (*etree.Document, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(2)
	if err == nil && bytes.Equal(head, gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer gz.Close()
		return parseTree(gz)
	}
	return parseTree(br)
}

// FromBytes parses an in-memory document.
func FromBytes(b []byte) (*etree.Document, error) {
	return Parse(bytes.NewReader(b))
}

// parseTree builds the element tree. The charset reader honors declared
// non-UTF-8 encodings (older baseline files are ISO-8859-1), and permissive
// mode lets DTD-declared entities through as literal text instead of
// failing, since the decoder never reads the DTD.
func parseTree(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.Permissive = true
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse medline xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse medline xml: document has no root element")
	}
	StripNamespaces(doc)
	return doc, nil
}

// StripNamespaces clears the namespace prefix of every element tag so path
// lookups match local names regardless of declared namespaces. Attribute
// prefixes are left alone.
func StripNamespaces(doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}
	stack := []*etree.Element{root}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		el.Space = ""
		stack = append(stack, el.ChildElements()...)
	}
}

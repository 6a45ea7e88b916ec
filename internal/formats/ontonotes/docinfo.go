package ontonotes

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/namecorpus/core/errors"
	"github.com/FocuswithJustin/namecorpus/core/stream"
	"github.com/FocuswithJustin/namecorpus/core/tokenize"
	"github.com/FocuswithJustin/namecorpus/internal/source"
)

var docElementExpr = xpath.MustCompile("/DOC")

// DocHeader holds the attributes of a document's opening <DOC ...> line.
type DocHeader struct {
	DocNo      string            `json:"docno,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ParseDocHeader reads the attributes of an opening document sentinel such as
//
//	<DOC DOCNO="bc/cctv/00/cctv_0001@0001@cctv@bc@en@on">
func ParseDocHeader(line string) (DocHeader, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, docOpen) {
		return DocHeader{}, errors.NewParse("ontonotes", "", "not a document header: "+line)
	}

	root, err := xmlquery.Parse(strings.NewReader(line + docClose))
	if err != nil {
		return DocHeader{}, &errors.ParseError{
			Format:  "ontonotes",
			Message: "malformed document header",
			Err:     err,
		}
	}
	node := xmlquery.QuerySelector(root, docElementExpr)
	if node == nil {
		return DocHeader{}, errors.NewParse("ontonotes", "", "no DOC element in header")
	}

	h := DocHeader{Attributes: make(map[string]string, len(node.Attr))}
	for _, attr := range node.Attr {
		h.Attributes[attr.Name.Local] = attr.Value
	}
	h.DocNo = node.SelectAttr("DOCNO")
	return h, nil
}

// DocInfo summarizes one document of a corpus.
type DocInfo struct {
	Index   int       `json:"index"`
	Header  DocHeader `json:"header"`
	Samples int       `json:"samples"`
	Names   int       `json:"names"`
}

// ScanDocuments decodes every document of docs and returns a summary of each.
// Documents whose header cannot be parsed keep an empty header.
func ScanDocuments(docs stream.Stream[string], tok tokenize.Tokenizer) ([]DocInfo, error) {
	dec := NewNameSampleStream(docs, WithTokenizer(tok))

	var infos []DocInfo
	err := stream.ForEach(docs, func(text string) error {
		dec.doc++
		samples, err := dec.decode(text)
		if err != nil {
			return err
		}

		info := DocInfo{Index: dec.doc, Samples: len(samples)}
		for _, s := range samples {
			info.Names += len(s.Names)
		}
		if header, ok := firstHeaderLine(text); ok {
			if h, err := ParseDocHeader(header); err == nil {
				info.Header = h
			}
		}
		infos = append(infos, info)
		return nil
	})
	return infos, err
}

func firstHeaderLine(text string) (string, bool) {
	sc := source.NewLineScanner(strings.NewReader(text))
	for sc.Scan() {
		if strings.HasPrefix(sc.Text(), docOpen) {
			return sc.Text(), true
		}
	}
	return "", false
}

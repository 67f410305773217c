package fetcher

import (
	"context"
	"encoding/xml"
	"io"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

// NewXMLDecoder returns an xml.Decoder that also accepts documents declared
// in a non-UTF-8 charset.
func NewXMLDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "xml: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}
	return decoder
}

// DecodeFirst decodes the first element with the given local name into a T.
// The rest of the document is still read so that a malformed document is
// reported as an error even when the element itself decoded cleanly.
// found is false when the document is well formed but has no such element.
func DecodeFirst[T any](ctx context.Context, r io.Reader, elementName string) (item T, found bool, err error) {
	decoder := NewXMLDecoder(r)
	sawElement := false

	for {
		if ctx.Err() != nil {
			return item, false, eris.Wrap(ctx.Err(), "xml: context cancelled")
		}

		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return item, false, eris.Wrap(err, "xml: read token")
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true

		if found || se.Name.Local != elementName {
			continue
		}

		if err := decoder.DecodeElement(&item, &se); err != nil {
			return item, false, eris.Wrap(err, "xml: decode element")
		}
		found = true
	}

	if !sawElement {
		return item, false, eris.New("xml: document has no root element")
	}
	return item, found, nil
}

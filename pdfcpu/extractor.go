// Package pdfcpu provides PDF text extraction using the pdfcpu library.
// It fetches PDF documents over HTTP and pulls visible text out of each
// page's content stream.
package pdfcpu

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	gena "github.com/sunes26/Gena"
)

// DefaultFetchTimeout is the default timeout for PDF downloads.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Extractor implements gena.PDFExtractor at compile time.
var _ gena.PDFExtractor = (*Extractor)(nil)

// Extractor downloads a PDF document and extracts its text page by page.
type Extractor struct {
	client  *http.Client
	timeout time.Duration
	url     string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTimeout sets the timeout for the PDF download.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.timeout = d
	}
}

// NewExtractor creates a PDF extractor for the given URL.
func NewExtractor(pdfURL string, opts ...Option) *Extractor {
	e := &Extractor{
		url:     pdfURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.client = &http.Client{
		Timeout: e.timeout,
	}

	return e
}

// IsPDFPage reports whether the URL points at a PDF document, by path
// extension or, failing that, by the Content-Type of a HEAD request.
func (e *Extractor) IsPDFPage(ctx context.Context) bool {
	if u, err := url.Parse(e.url); err == nil {
		if strings.HasSuffix(strings.ToLower(u.Path), ".pdf") {
			return true
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, e.url, nil)
	if err != nil {
		return false
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return strings.HasPrefix(resp.Header.Get("Content-Type"), "application/pdf")
}

// ExtractText downloads the PDF and extracts text from every page.
// Pages whose content streams yield no text are counted in TotalPages
// but not in ExtractedPages.
func (e *Extractor) ExtractText(ctx context.Context) (*gena.PDFText, error) {
	data, err := e.download(ctx)
	if err != nil {
		return nil, gena.Errorf(gena.EUNAVAILABLE, "downloading PDF %s: %v", e.url, err)
	}

	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, gena.Errorf(gena.EUNAVAILABLE, "reading PDF: %v", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		text := pageText(pdfCtx, pageNr)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	text := strings.Join(pages, "\n\n")

	return &gena.PDFText{
		Text:           text,
		ExtractedPages: len(pages),
		TotalPages:     pdfCtx.PageCount,
		CharCount:      utf8.RuneCountInString(text),
		WordCount:      gena.CountWords(text),
	}, nil
}

func (e *Extractor) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, gena.Errorf(gena.EUNAVAILABLE, "HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// pageText extracts visible text from one page's content stream.
func pageText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	return parseContentStream(stream)
}

// parseContentStream walks a page content stream line by line and
// collects the string operands of the text-showing operators Tj, TJ
// and '. The positioning operators Td, TD and T* contribute whitespace
// so that separately placed runs don't glue together.
func parseContentStream(stream []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(stream, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			writeLiterals(&sb, line, "")
		case bytes.HasSuffix(line, []byte("'")):
			writeLiterals(&sb, line, "\n")
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			sb.WriteByte(' ')
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	// Content streams carry no layout beyond the operator hints above;
	// collapse all whitespace runs to single spaces.
	return strings.Join(strings.Fields(sb.String()), " ")
}

// writeLiterals appends every decoded (…) string literal found on the
// line, each preceded by the separator.
func writeLiterals(sb *strings.Builder, line []byte, sep string) {
	for {
		open := bytes.IndexByte(line, '(')
		if open < 0 {
			return
		}
		line = line[open+1:]
		end := literalEnd(line)
		if end < 0 {
			return
		}
		if text := decodeLiteral(line[:end]); text != "" {
			sb.WriteString(sep)
			sb.WriteString(text)
		}
		line = line[end+1:]
	}
}

// literalEnd returns the index of the closing parenthesis, honoring
// backslash escapes, or -1 for an unterminated literal.
func literalEnd(raw []byte) int {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case ')':
			return i
		}
	}
	return -1
}

// decodeLiteral resolves PDF string escape sequences, including up to
// three-digit octal codes.
func decodeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				sb.WriteByte(raw[i])
				continue
			}
			val := int(raw[i] - '0')
			for d := 0; d < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; d++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}

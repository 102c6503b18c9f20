package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-analyzer/internal/logger"
)

type PDFParserService interface {
	ExtractText(ctx context.Context, data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

// PageSource yields the text items of individual pages, numbered from 1.
type PageSource interface {
	NumPages() int
	PageItems(pageNum int) ([]string, error)
}

// PageSourceOpener builds a PageSource from raw document bytes.
type PageSourceOpener func(data []byte) (PageSource, error)

type pdfParserService struct {
	open        PageSourceOpener
	concurrency int
}

func NewPDFParserService(concurrency int) PDFParserService {
	return NewPDFParserServiceWithOpener(OpenPDF, concurrency)
}

func NewPDFParserServiceWithOpener(open PageSourceOpener, concurrency int) PDFParserService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &pdfParserService{
		open:        open,
		concurrency: concurrency,
	}
}

// ExtractText joins the text of every page with "\n" in page order. Within a
// page, text items are joined by a single space. Any page failure fails the whole
// document.
func (p *pdfParserService) ExtractText(ctx context.Context, data []byte) (*PDFContent, error) {
	src, err := p.open(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	totalPage := src.NumPages()
	pageTexts := make([]string, totalPage)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i := 0; i < totalPage; i++ {
		pageIndex := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items, err := safePageItems(src, pageIndex+1)
			if err != nil {
				return fmt.Errorf("page %d: %w", pageIndex+1, err)
			}
			pageTexts[pageIndex] = strings.Join(items, " ")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	text := strings.TrimSpace(strings.Join(pageTexts, "\n"))
	logger.Ctx(ctx).Debug().
		Int("pages", totalPage).
		Int("chars", len(text)).
		Msg("📄 PDF text extracted")

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
	}, nil
}

// safePageItems turns panics from malformed content streams into errors.
func safePageItems(src PageSource, pageNum int) (items []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	return src.PageItems(pageNum)
}

type ledongthucSource struct {
	reader *pdf.Reader
}

// OpenPDF parses data with github.com/ledongthuc/pdf.
func OpenPDF(data []byte) (src PageSource, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &ledongthucSource{reader: r}, nil
}

func (s *ledongthucSource) NumPages() int {
	return s.reader.NumPage()
}

func (s *ledongthucSource) PageItems(pageNum int) ([]string, error) {
	page := s.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return nil, err
	}

	var items []string
	for _, row := range rows {
		for _, word := range row.Content {
			if word.S != "" {
				items = append(items, word.S)
			}
		}
	}
	return items, nil
}

package export

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
)

const (
	FormatCSV         = "csv"
	FormatSpreadsheet = "xlsx"

	ContentTypeCSV         = "text/csv;charset=utf-8"
	ContentTypeSpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Download is a file ready to be handed to the user.
type Download struct {
	Name        string
	ContentType string
	Body        []byte
}

type clock interface {
	Now() time.Time
}

type spreadsheetRenderer interface {
	DownloadExcel(ctx context.Context, payload expense.Payload) ([]byte, error)
}

// Sink hands a finished download to the user.
type Sink interface {
	Deliver(ctx context.Context, d Download) error
}

type config interface {
	FilePrefix() string
}

type Exporter struct {
	clock    clock
	renderer spreadsheetRenderer
	prefix   string
}

func NewExporter(config config, clock clock, renderer spreadsheetRenderer) *Exporter {
	return &Exporter{
		clock:    clock,
		renderer: renderer,
		prefix:   config.FilePrefix(),
	}
}

// CSVDownload builds the CSV file for the payload without delivering it.
func (e *Exporter) CSVDownload(payload *expense.Payload) Download {
	now := e.clock.Now()
	return Download{
		Name:        CSVFileName(now),
		ContentType: ContentTypeCSV,
		Body:        CSV(payload, expense.Today(now)),
	}
}

func (e *Exporter) ExportCSV(ctx context.Context, payload *expense.Payload, s Sink) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "exportCSV")
	defer span.Finish()
	defer func() {
		observeExport(FormatCSV, err)
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	d := e.CSVDownload(payload)
	if err = s.Deliver(ctx, d); err != nil {
		return errors.Wrap(err, "export csv")
	}
	logger.Info("csv exported", zap.String("file", d.Name), zap.Int("bytes", len(d.Body)))
	return nil
}

// ExportSpreadsheet asks the renderer for a workbook and delivers it. Nothing
// is delivered when rendering fails.
func (e *Exporter) ExportSpreadsheet(ctx context.Context, payload *expense.Payload, s Sink) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "exportSpreadsheet")
	defer span.Finish()
	defer func() {
		observeExport(FormatSpreadsheet, err)
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	var body expense.Payload
	if payload != nil {
		body = *payload
	}

	workbook, err := e.renderer.DownloadExcel(ctx, body)
	if err != nil {
		return errors.Wrap(err, "export spreadsheet")
	}

	d := Download{
		Name:        SpreadsheetFileName(e.prefix, e.clock.Now()),
		ContentType: ContentTypeSpreadsheet,
		Body:        workbook,
	}
	if err = s.Deliver(ctx, d); err != nil {
		return errors.Wrap(err, "export spreadsheet")
	}
	logger.Info("spreadsheet exported", zap.String("file", d.Name), zap.Int("bytes", len(d.Body)))
	return nil
}

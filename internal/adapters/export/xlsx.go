// Package export serializes adjusted series for download
package export

import (
	"dagsplott/internal/core/ngram"
	perr "dagsplott/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type for xlsx workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheet = "Sheet1"

// Xlsx encodes a series as a single-sheet workbook: a "date" column first,
// then one column per word. Values are written as integers since the
// adjusted series is already truncated. An empty series yields a workbook
// with only the header row.
func Xlsx(s ngram.Series) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header := make([]any, 0, len(s.Words)+1)
	header = append(header, "date")
	for _, w := range s.Words {
		header = append(header, w)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "xlsx header write failed")
	}

	for i, d := range s.Dates {
		row := make([]any, 0, len(s.Words)+1)
		row = append(row, d.Format("2006-01-02"))
		for j := range s.Words {
			row = append(row, int64(s.Values[i][j]))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "xlsx cell name failed")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "xlsx row write failed")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "xlsx encode failed")
	}
	return buf.Bytes(), nil
}

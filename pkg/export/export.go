// Package export renders a composed learning path as an xlsx question
// sheet for offline review.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"lpc/entities"
)

const sheet = "Questions"

// QuestionSheet writes one row per ledger question.
func QuestionSheet(title string, questions []entities.Question) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []any{"#", "Question", "Answer", "Type", "Options", "Source card"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, q := range questions {
		row := []any{
			i + 1,
			q.QuestionText,
			q.AnswerText,
			string(q.Type),
			strings.Join(q.Options, " | "),
			q.SourceCardTitle,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title}); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

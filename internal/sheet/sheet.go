// Package sheet exports quizzes to spreadsheets and imports them back.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"quizdown/internal/quiz"
)

// SheetName is the worksheet Export writes.
const SheetName = "Quiz"

// Column headers, in order.
var headers = []string{"No", "Question", "Answer", "Correct"}

var (
	// ErrNoSheet reports a workbook without worksheets.
	ErrNoSheet = errors.New("workbook has no sheets")
	// ErrMissingHeader reports a first row without the expected columns.
	ErrMissingHeader = errors.New("missing header")
)

// RowError locates an invalid data row.
type RowError struct {
	Row    int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Export writes questions as an xlsx workbook with one row per answer
// option. Questions without options get a single row with an empty
// Correct cell.
func Export(questions []quiz.Question) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if err := writeRow(f, 1, toCells(headers)); err != nil {
		return nil, err
	}
	row := 2
	for i, question := range questions {
		number := i + 1
		if len(question.Options) == 0 {
			if err := writeRow(f, row, []any{number, question.Text, "", ""}); err != nil {
				return nil, err
			}
			row++
			continue
		}
		for _, option := range question.Options {
			if err := writeRow(f, row, []any{number, question.Text, option.Text, yesNo(option.Correct)}); err != nil {
				return nil, err
			}
			row++
		}
	}
	if err := f.SetColWidth(SheetName, "B", "C", 40); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Import reads questions from the first sheet of an xlsx workbook written
// by Export. Rows sharing a No value form one question.
func Import(r io.Reader) ([]quiz.Question, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrMissingHeader)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, header := range headers {
		if _, ok := columns[strings.ToLower(header)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, header)
		}
	}

	var questions []quiz.Question
	lastNumber := 0
	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(name string) string {
			idx := columns[name]
			if idx >= len(row) {
				return ""
			}
			return row[idx]
		}
		rawNumber := strings.TrimSpace(cell("no"))
		if rawNumber == "" && strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		number, err := strconv.Atoi(rawNumber)
		if err != nil || number < 1 {
			return nil, &RowError{Row: rowNum, Reason: fmt.Sprintf("invalid question number %q", rawNumber)}
		}
		if number != lastNumber {
			lastNumber = number
			id := "q" + strconv.Itoa(len(questions)+1)
			questions = append(questions, quiz.Question{ID: id, Text: cell("question"), Options: []quiz.AnswerOption{}})
		}
		correctCell := strings.TrimSpace(cell("correct"))
		if correctCell == "" && cell("answer") == "" {
			continue
		}
		correct, err := parseYesNo(correctCell)
		if err != nil {
			return nil, &RowError{Row: rowNum, Reason: err.Error()}
		}
		current := &questions[len(questions)-1]
		current.Options = append(current.Options, quiz.AnswerOption{
			ID:      current.ID + "a" + strconv.Itoa(len(current.Options)+1),
			Text:    cell("answer"),
			Correct: correct,
		})
	}
	return questions, nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func parseYesNo(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "yes", "y", "true", "1", "x":
		return true, nil
	case "no", "n", "false", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid correct value %q", value)
}

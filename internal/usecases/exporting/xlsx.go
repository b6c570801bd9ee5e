package exporting

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Avaliações"

// RenderXLSX serializa as mesmas linhas do CSV em uma planilha, com o
// cabeçalho em negrito e colunas na mesma ordem do contrato.
func RenderXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	for col, title := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "resolving header cell")
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, errors.Wrap(err, "writing header cell")
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "creating header style")
	}

	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(csvHeader), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, errors.Wrap(err, "styling header")
	}

	for i, row := range rows {
		for col, value := range row.columns() {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, errors.Wrap(err, "resolving data cell")
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, errors.Wrap(err, "writing data cell")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "serializing workbook")
	}

	return buf.Bytes(), nil
}

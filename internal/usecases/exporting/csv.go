// Package exporting gera arquivos CSV e XLSX das avaliações, uma linha por
// item avaliado, para download pelos gestores.
package exporting

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/dashboarding"
)

// csvHeader é o contrato publicado do arquivo: 11 colunas fixas, nesta ordem.
var csvHeader = []string{
	"Evaluation ID",
	"Date",
	"Salesperson",
	"Manager",
	"Customer",
	"Location",
	"Category",
	"Score",
	"Comment",
	"Overall Score",
	"Overall Comment",
}

// Row é uma linha de dados do arquivo exportado, um item de avaliação.
type Row struct {
	EvaluationID   string
	Date           string
	Salesperson    string
	Manager        string
	Customer       string
	Location       string
	Category       string
	Score          int
	Comment        string
	OverallScore   float64
	OverallComment string
}

func (r Row) columns() []string {
	return []string{
		r.EvaluationID,
		r.Date,
		r.Salesperson,
		r.Manager,
		r.Customer,
		r.Location,
		r.Category,
		strconv.Itoa(r.Score),
		r.Comment,
		strconv.FormatFloat(r.OverallScore, 'f', 1, 64),
		r.OverallComment,
	}
}

// BuildRows achata as avaliações em linhas de exportação: cada item vira
// exatamente uma linha, carregando os dados da avaliação a que pertence.
func BuildRows(records []*domain.EvaluationRecord, resolveName func(userID int) string, normalizer *dashboarding.Normalizer) []Row {
	var rows []Row

	for _, record := range records {
		for _, item := range record.Items {
			category, _ := normalizer.Canonical(item.BehaviorItemID)

			rows = append(rows, Row{
				EvaluationID:   record.ID,
				Date:           record.VisitDate.Format("2006-01-02"),
				Salesperson:    resolveName(record.SalespersonID),
				Manager:        resolveName(record.ManagerID),
				Customer:       record.CustomerName,
				Location:       record.Location,
				Category:       category,
				Score:          item.Rating,
				Comment:        item.Comment,
				OverallScore:   record.OverallScore,
				OverallComment: record.OverallComment,
			})
		}
	}

	return rows
}

// RenderCSV serializa as linhas no formato do contrato: todos os valores
// entre aspas, inclusive o cabeçalho, com aspas internas duplicadas.
func RenderCSV(rows []Row) []byte {
	var buf bytes.Buffer

	writeCSVLine(&buf, csvHeader)
	for _, row := range rows {
		writeCSVLine(&buf, row.columns())
	}

	return buf.Bytes()
}

func writeCSVLine(buf *bytes.Buffer, columns []string) {
	for i, column := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(column, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

package exporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/dashboarding"
)

func exportFixture() []*domain.EvaluationRecord {
	return []*domain.EvaluationRecord{
		{
			ID:             "a1B2c3",
			SalespersonID:  10,
			ManagerID:      20,
			VisitDate:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			CustomerName:   `Padaria "Estrela"`,
			Location:       "Campinas",
			OverallComment: "Boa visita",
			OverallScore:   87.5,
			Items: []domain.EvaluationItem{
				{BehaviorItemID: "prep_1", Rating: 4, Comment: "Chegou preparado"},
				{BehaviorItemID: "obj_1", Rating: 3},
			},
		},
		{
			ID:            "d4E5f6",
			SalespersonID: 11,
			ManagerID:     20,
			VisitDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			OverallScore:  50,
			Items: []domain.EvaluationItem{
				{BehaviorItemID: "obs1", Rating: 2},
			},
		},
	}
}

func fixtureNames(userID int) string {
	switch userID {
	case 10:
		return "Ana Souza"
	case 11:
		return "Bruno Lima"
	case 20:
		return "Carla Dias"
	default:
		return ""
	}
}

func TestRenderCSV(t *testing.T) {
	rows := BuildRows(exportFixture(), fixtureNames, dashboarding.NewNormalizer(nil))
	output := string(RenderCSV(rows))

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// Cabeçalho fixo de 11 colunas mais uma linha por item avaliado.
	require.Len(t, lines, 4)
	assert.Equal(t,
		`"Evaluation ID","Date","Salesperson","Manager","Customer","Location","Category","Score","Comment","Overall Score","Overall Comment"`,
		lines[0],
	)

	assert.Equal(t,
		`"a1B2c3","2026-03-14","Ana Souza","Carla Dias","Padaria ""Estrela""","Campinas","preparation","4","Chegou preparado","87.5","Boa visita"`,
		lines[1],
	)
	assert.Equal(t,
		`"a1B2c3","2026-03-14","Ana Souza","Carla Dias","Padaria ""Estrela""","Campinas","objections","3","","87.5","Boa visita"`,
		lines[2],
	)
	assert.Equal(t,
		`"d4E5f6","2026-03-15","Bruno Lima","Carla Dias","","","observation","2","","50.0",""`,
		lines[3],
	)
}

func TestRenderCSV_SemAvaliacoes(t *testing.T) {
	output := string(RenderCSV(nil))

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, strings.Split(lines[0], ","), 11)
}

func TestBuildRows_UmaLinhaPorItem(t *testing.T) {
	records := exportFixture()

	rows := BuildRows(records, fixtureNames, dashboarding.NewNormalizer(nil))

	var itemCount int
	for _, record := range records {
		itemCount += len(record.Items)
	}
	assert.Len(t, rows, itemCount)
}

func TestRenderXLSX(t *testing.T) {
	rows := BuildRows(exportFixture(), fixtureNames, dashboarding.NewNormalizer(nil))

	content, err := RenderXLSX(rows)

	require.NoError(t, err)
	assert.NotEmpty(t, content)
	// Arquivos xlsx são pacotes zip, assinatura PK.
	assert.Equal(t, []byte{'P', 'K'}, content[:2])
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-scorecard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-scorecard-api/pkg/middleware"
)

// ExportEvaluations gera o arquivo de avaliações para download, no formato
// csv (default) ou xlsx
func ExportEvaluations(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportEvaluations")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := evaluationFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		format := exporting.Format(r.URL.Query().Get("format"))
		if format == "" {
			format = exporting.FormatCSV
		}

		file, err := service.Export(userClaims, filters, format)
		if err != nil {
			if errors.Is(err, exporting.ErrUnsupportedFormat) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de exportação inválido. Valores aceitos: csv, xlsx", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar exportação", nil)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		if _, err := w.Write(file.Content); err != nil {
			logrus.WithError(err).Error("Erro ao enviar arquivo de exportação")
		}
	}
}

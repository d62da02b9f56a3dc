package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
)

func CreatePublisherHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CompanyRequest
		if err := parseBody(r, validation.Company, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewCreatePublisherLogic(r.Context(), svcCtx)
		resp, err := l.CreatePublisher(&req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			writeCreated(r.Context(), w, "publishers", resp.Id, resp)
		}
	}
}

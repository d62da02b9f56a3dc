package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func UpdateDeveloperHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}
		var req types.CompanyRequest
		if err := parseBody(r, validation.Company, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewUpdateDeveloperLogic(r.Context(), svcCtx)
		resp, err := l.UpdateDeveloper(id, &req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

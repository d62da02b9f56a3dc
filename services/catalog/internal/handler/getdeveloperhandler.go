package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetDeveloperHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.IdPath
		if err := httpx.ParsePath(r, &req); err != nil {
			writeCatalogError(r.Context(), w, invalidID())
			return
		}

		l := logic.NewGetDeveloperLogic(r.Context(), svcCtx)
		resp, err := l.GetDeveloper(&req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

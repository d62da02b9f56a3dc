package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func DeleteVideoGameHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.IdPath
		if err := httpx.ParsePath(r, &req); err != nil {
			writeCatalogError(r.Context(), w, invalidID())
			return
		}

		l := logic.NewDeleteVideoGameLogic(r.Context(), svcCtx)
		if err := l.DeleteVideoGame(&req); err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

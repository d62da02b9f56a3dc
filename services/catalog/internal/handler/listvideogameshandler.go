package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/ports"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListVideoGamesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.VideoGameFilterRequest
		if err := httpx.ParseForm(r, &req); err != nil {
			writeCatalogError(r.Context(), w, ports.Invalid("", "Malformed query string"))
			return
		}

		l := logic.NewListVideoGamesLogic(r.Context(), svcCtx)
		resp, err := l.ListVideoGames(&req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

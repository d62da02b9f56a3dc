package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func UpdateVideoGameHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}
		var req types.VideoGameRequest
		if err := parseBody(r, validation.VideoGame, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewUpdateVideoGameLogic(r.Context(), svcCtx)
		resp, err := l.UpdateVideoGame(id, &req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

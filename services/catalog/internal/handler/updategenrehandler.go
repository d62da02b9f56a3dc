package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func UpdateGenreHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}
		var req types.GenreRequest
		if err := parseBody(r, validation.Genre, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewUpdateGenreLogic(r.Context(), svcCtx)
		resp, err := l.UpdateGenre(id, &req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

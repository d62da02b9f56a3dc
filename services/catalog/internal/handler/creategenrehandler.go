package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
)

func CreateGenreHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GenreRequest
		if err := parseBody(r, validation.Genre, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewCreateGenreLogic(r.Context(), svcCtx)
		resp, err := l.CreateGenre(&req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			writeCreated(r.Context(), w, "genres", resp.Id, resp)
		}
	}
}

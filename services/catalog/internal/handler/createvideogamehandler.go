package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
)

func CreateVideoGameHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.VideoGameRequest
		if err := parseBody(r, validation.VideoGame, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewCreateVideoGameLogic(r.Context(), svcCtx)
		resp, err := l.CreateVideoGame(&req)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			writeCreated(r.Context(), w, "videogames", resp.Id, resp)
		}
	}
}

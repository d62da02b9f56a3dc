package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var (
	setStringSchema  = validation.ScratchValue("string")
	mapBooleanSchema = validation.ScratchValue("boolean")
)

func StringSetAddHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Value string `json:"value"`
		}
		if err := parseBody(r, setStringSchema, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewSetLogic(r.Context(), svcCtx)
		resp, err := l.AddString(req.Value)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func StringSetAllHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, _ := logic.NewSetLogic(r.Context(), svcCtx).Strings()
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

func StringSetClearHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, _ := logic.NewSetLogic(r.Context(), svcCtx).ClearStrings()
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

func BooleanMapAddHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Value bool `json:"value"`
		}
		if err := parseBody(r, mapBooleanSchema, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewSetLogic(r.Context(), svcCtx)
		resp, err := l.AddBoolean(req.Value)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func BooleanMapAllHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, _ := logic.NewSetLogic(r.Context(), svcCtx).Booleans()
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

func BooleanMapClearHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, _ := logic.NewSetLogic(r.Context(), svcCtx).ClearBooleans()
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

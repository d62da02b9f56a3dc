package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var primitiveSchemas = map[string]*validation.Schema{
	"number":  validation.ScratchValue("number"),
	"string":  validation.ScratchValue("string"),
	"boolean": validation.ScratchValue("boolean"),
}

func PrimitiveSetHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	schema := primitiveSchemas[kind]
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScratchValueRequest
		if err := parseBody(r, schema, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewPrimitiveLogic(r.Context(), svcCtx)
		resp, err := l.Set(kind, req.Value)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func PrimitiveGetHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewPrimitiveLogic(r.Context(), svcCtx)
		resp, err := l.Get(kind)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func PrimitiveClearHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewPrimitiveLogic(r.Context(), svcCtx)
		resp, err := l.Clear(kind)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

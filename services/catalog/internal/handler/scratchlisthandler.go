package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/internal/validation"
	"github.com/cuihairu/labcatalog/services/catalog/internal/logic"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// list kind -> element kind used by the value schemas
var listElems = map[string]string{
	"numbers":  "number",
	"strings":  "string",
	"booleans": "boolean",
}

var (
	listValueSchemas   = map[string]*validation.Schema{}
	listIndexedSchemas = map[string]*validation.Schema{}
)

func init() {
	for list, elem := range listElems {
		listValueSchemas[list] = validation.ScratchValue(elem)
		listIndexedSchemas[list] = validation.ScratchIndexed(elem)
	}
}

func ListAddHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	schema := listValueSchemas[kind]
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScratchValueRequest
		if err := parseBody(r, schema, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewListLogic(r.Context(), svcCtx)
		resp, err := l.Add(kind, req.Value)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func ListInsertHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	schema := listIndexedSchemas[kind]
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScratchIndexRequest
		if err := parseBody(r, schema, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewListLogic(r.Context(), svcCtx)
		resp, err := l.InsertAt(kind, req.Index, req.Value)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func ListAllHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListLogic(r.Context(), svcCtx)
		resp, err := l.All(kind)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func ListAtHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.IndexPath
		if err := httpx.ParsePath(r, &req); err != nil {
			writeCatalogError(r.Context(), w, invalidIndex())
			return
		}

		l := logic.NewListLogic(r.Context(), svcCtx)
		resp, err := l.At(kind, req.Index)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func ListClearHandler(svcCtx *svc.ServiceContext, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListLogic(r.Context(), svcCtx)
		resp, err := l.Clear(kind)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

func ItemAddHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScratchItemRequest
		if err := parseBody(r, validation.ScratchItem, &req); err != nil {
			writeCatalogError(r.Context(), w, err)
			return
		}

		l := logic.NewListLogic(r.Context(), svcCtx)
		resp, err := l.AddItem(req.Item)
		if err != nil {
			writeCatalogError(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/developers",
				Handler: CreateDeveloperHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/developers",
				Handler: ListDevelopersHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/developers/:id",
				Handler: GetDeveloperHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/developers/:id",
				Handler: UpdateDeveloperHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/developers/:id",
				Handler: DeleteDeveloperHandler(serverCtx),
			},
		},
		rest.WithPrefix(apiPrefix),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/publishers",
				Handler: CreatePublisherHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/publishers",
				Handler: ListPublishersHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/publishers/:id",
				Handler: GetPublisherHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/publishers/:id",
				Handler: UpdatePublisherHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/publishers/:id",
				Handler: DeletePublisherHandler(serverCtx),
			},
		},
		rest.WithPrefix(apiPrefix),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/genres",
				Handler: CreateGenreHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/genres",
				Handler: ListGenresHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/genres/:id",
				Handler: GetGenreHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/genres/:id",
				Handler: UpdateGenreHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/genres/:id",
				Handler: DeleteGenreHandler(serverCtx),
			},
		},
		rest.WithPrefix(apiPrefix),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/videogames",
				Handler: CreateVideoGameHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/videogames",
				Handler: ListVideoGamesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/videogames/:id",
				Handler: GetVideoGameHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/videogames/:id",
				Handler: UpdateVideoGameHandler(serverCtx),
			},
			{
				Method:  http.MethodPatch,
				Path:    "/videogames/:id",
				Handler: PatchVideoGameHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/videogames/:id",
				Handler: DeleteVideoGameHandler(serverCtx),
			},
		},
		rest.WithPrefix(apiPrefix),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/primitives/number",
				Handler: PrimitiveSetHandler(serverCtx, "number"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/primitives/number",
				Handler: PrimitiveGetHandler(serverCtx, "number"),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/primitives/number",
				Handler: PrimitiveClearHandler(serverCtx, "number"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/primitives/string",
				Handler: PrimitiveSetHandler(serverCtx, "string"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/primitives/string",
				Handler: PrimitiveGetHandler(serverCtx, "string"),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/primitives/string",
				Handler: PrimitiveClearHandler(serverCtx, "string"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/primitives/boolean",
				Handler: PrimitiveSetHandler(serverCtx, "boolean"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/primitives/boolean",
				Handler: PrimitiveGetHandler(serverCtx, "boolean"),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/primitives/boolean",
				Handler: PrimitiveClearHandler(serverCtx, "boolean"),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/numbers",
				Handler: ListAddHandler(serverCtx, "numbers"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/numbers",
				Handler: ListAllHandler(serverCtx, "numbers"),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/collections/numbers",
				Handler: ListClearHandler(serverCtx, "numbers"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/numbers/index",
				Handler: ListInsertHandler(serverCtx, "numbers"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/numbers/index/:index",
				Handler: ListAtHandler(serverCtx, "numbers"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/strings",
				Handler: ListAddHandler(serverCtx, "strings"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/strings",
				Handler: ListAllHandler(serverCtx, "strings"),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/collections/strings",
				Handler: ListClearHandler(serverCtx, "strings"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/strings/index",
				Handler: ListInsertHandler(serverCtx, "strings"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/strings/index/:index",
				Handler: ListAtHandler(serverCtx, "strings"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/booleans",
				Handler: ListAddHandler(serverCtx, "booleans"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/booleans",
				Handler: ListAllHandler(serverCtx, "booleans"),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/collections/booleans",
				Handler: ListClearHandler(serverCtx, "booleans"),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/booleans/index",
				Handler: ListInsertHandler(serverCtx, "booleans"),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/booleans/index/:index",
				Handler: ListAtHandler(serverCtx, "booleans"),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/string-set",
				Handler: StringSetAddHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/string-set",
				Handler: StringSetAllHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/collections/string-set",
				Handler: StringSetClearHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/boolean-map",
				Handler: BooleanMapAddHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/boolean-map",
				Handler: BooleanMapAllHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/collections/boolean-map",
				Handler: BooleanMapClearHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/collections/items",
				Handler: ItemAddHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/collections/items",
				Handler: ListAllHandler(serverCtx, "items"),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/collections/items",
				Handler: ListClearHandler(serverCtx, "items"),
			},
		},
	)
}

package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListGenresLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListGenresLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListGenresLogic {
	return &ListGenresLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListGenresLogic) ListGenres() (*types.GenreListResponse, error) {
	views, err := l.svcCtx.Catalog.ListGenres(l.ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.GenreResponse, 0, len(views))
	for _, v := range views {
		out = append(out, genreToResponse(v))
	}
	return &types.GenreListResponse{Items: out, Count: len(out)}, nil
}

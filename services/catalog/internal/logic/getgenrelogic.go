package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetGenreLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetGenreLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGenreLogic {
	return &GetGenreLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetGenreLogic) GetGenre(req *types.IdPath) (*types.GenreResponse, error) {
	v, err := l.svcCtx.Catalog.GetGenre(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}
	resp := genreToResponse(v)
	return &resp, nil
}

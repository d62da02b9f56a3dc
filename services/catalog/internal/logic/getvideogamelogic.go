package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetVideoGameLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetVideoGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetVideoGameLogic {
	return &GetVideoGameLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetVideoGameLogic) GetVideoGame(req *types.IdPath) (*types.VideoGameResponse, error) {
	v, err := l.svcCtx.Catalog.GetVideoGame(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}
	resp := gameToResponse(v)
	return &resp, nil
}

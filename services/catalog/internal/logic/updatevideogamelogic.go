package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateVideoGameLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateVideoGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateVideoGameLogic {
	return &UpdateVideoGameLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateVideoGameLogic) UpdateVideoGame(id uint, req *types.VideoGameRequest) (*types.VideoGameResponse, error) {
	v, err := l.svcCtx.Catalog.UpdateVideoGame(l.ctx, id, gameInput(req))
	if err != nil {
		return nil, err
	}
	resp := gameToResponse(v)
	return &resp, nil
}

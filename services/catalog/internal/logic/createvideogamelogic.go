package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateVideoGameLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateVideoGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateVideoGameLogic {
	return &CreateVideoGameLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateVideoGameLogic) CreateVideoGame(req *types.VideoGameRequest) (*types.VideoGameResponse, error) {
	v, err := l.svcCtx.Catalog.CreateVideoGame(l.ctx, gameInput(req))
	if err != nil {
		return nil, err
	}
	l.Infof("videogame created: id=%d title=%q", v.ID, v.Title)
	resp := gameToResponse(v)
	return &resp, nil
}

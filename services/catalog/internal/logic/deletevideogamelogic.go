package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteVideoGameLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteVideoGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteVideoGameLogic {
	return &DeleteVideoGameLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteVideoGameLogic) DeleteVideoGame(req *types.IdPath) error {
	if err := l.svcCtx.Catalog.DeleteVideoGame(l.ctx, req.Id); err != nil {
		return err
	}
	l.Infof("videogame deleted: id=%d", req.Id)
	return nil
}

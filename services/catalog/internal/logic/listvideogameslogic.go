package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListVideoGamesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListVideoGamesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListVideoGamesLogic {
	return &ListVideoGamesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListVideoGamesLogic) ListVideoGames(req *types.VideoGameFilterRequest) (*types.VideoGameListResponse, error) {
	filter, err := parseFilter(req)
	if err != nil {
		return nil, err
	}
	views, err := l.svcCtx.Catalog.ListVideoGames(l.ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]types.VideoGameResponse, 0, len(views))
	for _, v := range views {
		out = append(out, gameToResponse(v))
	}
	return &types.VideoGameListResponse{Items: out, Count: len(out)}, nil
}

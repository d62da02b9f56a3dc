package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/internal/service/catalog"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PatchVideoGameLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPatchVideoGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PatchVideoGameLogic {
	return &PatchVideoGameLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PatchVideoGameLogic) PatchVideoGame(id uint, req *types.VideoGamePatchRequest) (*types.VideoGameResponse, error) {
	v, err := l.svcCtx.Catalog.PatchVideoGame(l.ctx, id, catalog.VideoGamePatch{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		Price:       req.Price,
		DeveloperID: req.DeveloperId,
		PublisherID: req.PublisherId,
		GenreID:     req.GenreId,
	})
	if err != nil {
		return nil, err
	}
	resp := gameToResponse(v)
	return &resp, nil
}

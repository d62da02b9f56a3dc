package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/internal/service/catalog"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateGenreLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateGenreLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateGenreLogic {
	return &UpdateGenreLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateGenreLogic) UpdateGenre(id uint, req *types.GenreRequest) (*types.GenreResponse, error) {
	v, err := l.svcCtx.Catalog.UpdateGenre(l.ctx, id, catalog.GenreInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return nil, err
	}
	resp := genreToResponse(v)
	return &resp, nil
}

package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/internal/service/catalog"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateGenreLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateGenreLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGenreLogic {
	return &CreateGenreLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateGenreLogic) CreateGenre(req *types.GenreRequest) (*types.GenreResponse, error) {
	v, err := l.svcCtx.Catalog.CreateGenre(l.ctx, catalog.GenreInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return nil, err
	}
	l.Infof("genre created: id=%d name=%q", v.ID, v.Name)
	resp := genreToResponse(v)
	return &resp, nil
}

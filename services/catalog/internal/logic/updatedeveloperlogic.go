package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateDeveloperLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateDeveloperLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateDeveloperLogic {
	return &UpdateDeveloperLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateDeveloperLogic) UpdateDeveloper(id uint, req *types.CompanyRequest) (*types.CompanyResponse, error) {
	v, err := l.svcCtx.Catalog.UpdateDeveloper(l.ctx, id, companyInput(req))
	if err != nil {
		return nil, err
	}
	resp := companyToResponse(v)
	return &resp, nil
}

package logic

import (
	"context"

	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateDeveloperLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateDeveloperLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateDeveloperLogic {
	return &CreateDeveloperLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateDeveloperLogic) CreateDeveloper(req *types.CompanyRequest) (*types.CompanyResponse, error) {
	v, err := l.svcCtx.Catalog.CreateDeveloper(l.ctx, companyInput(req))
	if err != nil {
		return nil, err
	}
	l.Infof("developer created: id=%d name=%q", v.ID, v.Name)
	resp := companyToResponse(v)
	return &resp, nil
}

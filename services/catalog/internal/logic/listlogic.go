package logic

import (
	"context"
	"fmt"

	"github.com/cuihairu/labcatalog/internal/scratch"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/cuihairu/labcatalog/services/catalog/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// listOps adapts one typed scratch list to untyped request values.
type listOps struct {
	noun   string
	add    func(raw any) (int, error)
	insert func(index int, raw any) (int, error)
	all    func() (any, int)
	at     func(index int) (any, error)
	clear  func()
}

func bindList[T any](noun string, list *scratch.List[T], coerce func(any) (T, error)) listOps {
	return listOps{
		noun: noun,
		add: func(raw any) (int, error) {
			v, err := coerce(raw)
			if err != nil {
				return 0, err
			}
			return list.Add(v), nil
		},
		insert: func(index int, raw any) (int, error) {
			v, err := coerce(raw)
			if err != nil {
				return 0, err
			}
			return list.InsertAt(index, v)
		},
		all: func() (any, int) {
			items := list.All()
			return items, len(items)
		},
		at: func(index int) (any, error) {
			v, err := list.At(index)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		clear: list.Clear,
	}
}

// ListLogic serves the number, string and boolean lists.
type ListLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListLogic {
	return &ListLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListLogic) ops(kind string) (listOps, error) {
	st := l.svcCtx.Scratch
	switch kind {
	case "numbers":
		return bindList("Number", &st.Numbers, scratch.CoerceInt), nil
	case "strings":
		return bindList("String", &st.Strings, scratch.CoerceString), nil
	case "booleans":
		return bindList("Boolean", &st.Booleans, scratch.CoerceBool), nil
	case "items":
		return bindList("Item", &st.Items, scratch.CoerceString), nil
	}
	return listOps{}, fmt.Errorf("unknown list kind %q", kind)
}

func (l *ListLogic) Add(kind string, raw any) (*types.ScratchAddResponse, error) {
	ops, err := l.ops(kind)
	if err != nil {
		return nil, err
	}
	n, err := ops.add(raw)
	if err != nil {
		return nil, err
	}
	return &types.ScratchAddResponse{Message: ops.noun + " added to the list", TotalItems: n}, nil
}

// AddItem appends to the generic items collection and echoes the item.
func (l *ListLogic) AddItem(item string) (*types.ScratchItemAddResponse, error) {
	n := l.svcCtx.Scratch.Items.Add(item)
	return &types.ScratchItemAddResponse{Message: "Item added successfully", Item: item, TotalItems: n}, nil
}

func (l *ListLogic) InsertAt(kind string, index int, raw any) (*types.ScratchAddResponse, error) {
	ops, err := l.ops(kind)
	if err != nil {
		return nil, err
	}
	n, err := ops.insert(index, raw)
	if err != nil {
		return nil, err
	}
	return &types.ScratchAddResponse{Message: fmt.Sprintf("%s added at index %d", ops.noun, index), TotalItems: n}, nil
}

func (l *ListLogic) All(kind string) (*types.ScratchListResponse, error) {
	ops, err := l.ops(kind)
	if err != nil {
		return nil, err
	}
	items, n := ops.all()
	return &types.ScratchListResponse{Items: items, Count: n}, nil
}

func (l *ListLogic) At(kind string, index int) (*types.ScratchIndexResponse, error) {
	ops, err := l.ops(kind)
	if err != nil {
		return nil, err
	}
	v, err := ops.at(index)
	if err != nil {
		return nil, err
	}
	return &types.ScratchIndexResponse{Index: index, Value: v}, nil
}

func (l *ListLogic) Clear(kind string) (*types.MessageResponse, error) {
	ops, err := l.ops(kind)
	if err != nil {
		return nil, err
	}
	ops.clear()
	return &types.MessageResponse{Message: ops.noun + " list cleared"}, nil
}

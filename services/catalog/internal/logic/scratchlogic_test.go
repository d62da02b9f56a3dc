package logic

import (
	"context"
	"sync"
	"testing"

	"github.com/cuihairu/labcatalog/internal/scratch"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
)

func newScratchCtx() *svc.ServiceContext {
	return &svc.ServiceContext{Scratch: scratch.NewStore()}
}

func TestListAllCountMatchesItemsUnderWrites(t *testing.T) {
	svcCtx := newScratchCtx()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l := NewListLogic(ctx, svcCtx)
		for i := 0; i < 500; i++ {
			if _, err := l.Add("numbers", i); err != nil {
				t.Errorf("add: %v", err)
				return
			}
		}
	}()

	l := NewListLogic(ctx, svcCtx)
	for i := 0; i < 500; i++ {
		resp, err := l.All("numbers")
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		items, ok := resp.Items.([]int)
		if !ok {
			t.Fatalf("items type %T", resp.Items)
		}
		if resp.Count != len(items) {
			t.Fatalf("count %d, items %d", resp.Count, len(items))
		}
	}
	wg.Wait()
}

func TestBooleanMapCountMatchesCountsUnderWrites(t *testing.T) {
	svcCtx := newScratchCtx()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l := NewSetLogic(ctx, svcCtx)
		for i := 0; i < 500; i++ {
			_, _ = l.AddBoolean(i%3 == 0)
		}
	}()

	l := NewSetLogic(ctx, svcCtx)
	for i := 0; i < 500; i++ {
		resp, err := l.Booleans()
		if err != nil {
			t.Fatalf("booleans: %v", err)
		}
		if got := resp.BooleanMap["true"] + resp.BooleanMap["false"]; got != resp.Count {
			t.Fatalf("count %d, map sums to %d", resp.Count, got)
		}
	}
	wg.Wait()
}

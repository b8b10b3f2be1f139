package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	ctxPkg "github.com/ecotrackhq/ecotrack/pkg/context"
	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	"github.com/ecotrackhq/ecotrack/pkg/internal/service"
	"github.com/ecotrackhq/ecotrack/pkg/internal/storage"
	"github.com/ecotrackhq/ecotrack/pkg/internal/storage/db"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// newTestContext 构造挂了内存数据库的请求上下文，结构与中间件注入一致.
func newTestContext(t *testing.T) context.Context {
	t.Helper()

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}

	if err := g.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mgr := &storage.Manager{DB: &db.Client{DB: g}}

	return ctxPkg.WithStorageManager(context.Background(), mgr)
}

func mustRecord(t *testing.T, ctx context.Context, svc *service.WasteService, caller types.Identity, typ string) string {
	t.Helper()

	w := 1.0

	resp, err := svc.Record(ctx, caller, types.RecordWasteRequest{Weight: &w, Type: typ})
	if err != nil {
		t.Fatalf("record for %s: %v", caller.ID, err)
	}

	return resp.ID
}

// TestListOwnershipScoping 两个普通用户交错写入后，各自的列表互不可见；
// 管理员不受归属限定，看到全量.
func TestListOwnershipScoping(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewWasteService(ctx)

	alice := types.Identity{ID: "alice", Role: types.RoleUser}
	bob := types.Identity{ID: "bob", Role: types.RoleUser}

	for i := 0; i < 3; i++ {
		mustRecord(t, ctx, svc, alice, model.WasteTypeRecyclable)
		mustRecord(t, ctx, svc, bob, model.WasteTypeNonRecyclable)
	}

	aliceList, err := svc.List(ctx, alice, types.ListWasteQuery{})
	if err != nil {
		t.Fatalf("list for alice: %v", err)
	}

	bobList, err := svc.List(ctx, bob, types.ListWasteQuery{})
	if err != nil {
		t.Fatalf("list for bob: %v", err)
	}

	if aliceList.Total != 3 || bobList.Total != 3 {
		t.Errorf("totals = %d/%d, want 3/3", aliceList.Total, bobList.Total)
	}

	seen := map[string]bool{}

	for _, r := range aliceList.Items {
		if r.UserID != alice.ID {
			t.Errorf("alice saw record owned by %s", r.UserID)
		}

		seen[r.ID] = true
	}

	for _, r := range bobList.Items {
		if r.UserID != bob.ID {
			t.Errorf("bob saw record owned by %s", r.UserID)
		}

		if seen[r.ID] {
			t.Errorf("record %s visible to both users", r.ID)
		}
	}

	admin := types.Identity{ID: "ops", Role: types.RoleAdmin}

	adminList, err := svc.List(ctx, admin, types.ListWasteQuery{})
	if err != nil {
		t.Fatalf("list for admin: %v", err)
	}

	if adminList.Total != 6 {
		t.Errorf("admin total = %d, want 6", adminList.Total)
	}
}

// TestSnapshotOwnershipScoping 聚合用的快照同样按归属过滤.
func TestSnapshotOwnershipScoping(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewWasteService(ctx)

	alice := types.Identity{ID: "alice", Role: types.RoleUser}
	bob := types.Identity{ID: "bob", Role: types.RoleUser}

	mustRecord(t, ctx, svc, alice, model.WasteTypeRecyclable)
	mustRecord(t, ctx, svc, bob, model.WasteTypeRecyclable)
	mustRecord(t, ctx, svc, bob, model.WasteTypeNonRecyclable)

	snap, err := svc.Snapshot(ctx, alice, time.Time{})
	if err != nil {
		t.Fatalf("snapshot for alice: %v", err)
	}

	if len(snap) != 1 || snap[0].UserID != alice.ID {
		t.Errorf("alice snapshot = %d records, want only her own", len(snap))
	}

	adminSnap, err := svc.Snapshot(ctx, types.Identity{ID: "ops", Role: types.RoleAdmin}, time.Time{})
	if err != nil {
		t.Fatalf("snapshot for admin: %v", err)
	}

	if len(adminSnap) != 3 {
		t.Errorf("admin snapshot = %d records, want 3", len(adminSnap))
	}
}

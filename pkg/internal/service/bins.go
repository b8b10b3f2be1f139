package service

import (
	"context"

	"github.com/google/uuid"

	ctxPkg "github.com/ecotrackhq/ecotrack/pkg/context"
	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
	"github.com/ecotrackhq/ecotrack/pkg/log"
	"github.com/ecotrackhq/ecotrack/pkg/queue"
	"github.com/ecotrackhq/ecotrack/pkg/rule"
)

// BinService 管理回收容器台账.
type BinService struct{ *WasteService }

// NewBinService 构造容器服务.
func NewBinService(c context.Context) *BinService {
	return &BinService{NewWasteService(c)}
}

// Create 新增回收容器.
func (s *BinService) Create(ctx context.Context, req types.CreateBinRequest) (model.WasteBin, error) {
	if err := rule.ValidateStruct(req); err != nil {
		return model.WasteBin{}, validationErr(err)
	}

	bin := model.WasteBin{
		ID:       uuid.NewString(),
		Location: req.Location,
		Type:     req.Type,
		Capacity: *req.Capacity,
		Status:   req.Status,
	}

	if bin.Status == "" {
		bin.Status = model.BinStatusActive
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Create(&bin).Error; err != nil {
		return model.WasteBin{}, storeErr(err)
	}

	s.publishBinEvent(ctx, queue.TopicBinCreated, bin)

	return bin, nil
}

// Get 按 ID 查找容器.
func (s *BinService) Get(ctx context.Context, id string) (model.WasteBin, error) {
	var bin model.WasteBin

	if err := s.dbClient.GetDB().WithContext(ctx).First(&bin, "id = ?", id).Error; err != nil {
		return model.WasteBin{}, storeErr(err)
	}

	return bin, nil
}

// List 列出全部容器.
func (s *BinService) List(ctx context.Context) (types.ListBinsResponse, error) {
	bins := []model.WasteBin{}

	dbx := s.dbClient.GetDB().WithContext(ctx).Model(&model.WasteBin{})

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return types.ListBinsResponse{}, storeErr(err)
	}

	if err := dbx.Order("created_at DESC").Find(&bins).Error; err != nil {
		return types.ListBinsResponse{}, storeErr(err)
	}

	return types.ListBinsResponse{Items: bins, Total: total}, nil
}

// Update 更新容器信息，仅更新提供的字段.
func (s *BinService) Update(ctx context.Context, id string, req types.UpdateBinRequest) (model.WasteBin, error) {
	if err := rule.ValidateStruct(req); err != nil {
		return model.WasteBin{}, validationErr(err)
	}

	bin, err := s.Get(ctx, id)
	if err != nil {
		return model.WasteBin{}, err
	}

	updates := map[string]any{}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if req.Type != nil {
		updates["type"] = *req.Type
	}

	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.dbClient.GetDB().WithContext(ctx).
			Model(&bin).
			Updates(updates).Error; err != nil {
			return model.WasteBin{}, storeErr(err)
		}
	}

	s.publishBinEvent(ctx, queue.TopicBinUpdated, bin)

	return bin, nil
}

// Delete 下线容器（软删除）.
func (s *BinService) Delete(ctx context.Context, id string) error {
	bin, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Delete(&bin).Error; err != nil {
		return storeErr(err)
	}

	s.publishBinEvent(ctx, queue.TopicBinDeleted, bin)

	return nil
}

// publishBinEvent 尽力而为发布容器变更事件.
func (s *BinService) publishBinEvent(ctx context.Context, topic string, bin model.WasteBin) {
	if s.mqClient == nil {
		return
	}

	payload := queue.BinChangedPayload{
		Bin: queue.BinRef{ID: bin.ID, Location: bin.Location, Type: bin.Type, Status: bin.Status},
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer(Producer))
	if err == nil {
		err = s.mqClient.Publish(ctx, topic, msg)
	}

	if err != nil {
		logger := ctxPkg.WithTraceContext(ctx, *log.Logger())
		logger.Warn().Err(err).Str("bin_id", bin.ID).Str("topic", topic).Msg("publish bin event failed")
	}
}

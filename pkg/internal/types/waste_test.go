package types_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"

	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
	"github.com/ecotrackhq/ecotrack/pkg/rule"
)

func wasteReq(weight float64) types.RecordWasteRequest {
	return types.RecordWasteRequest{Weight: &weight, Type: "recyclable"}
}

// TestRecordWasteLocationOptional 不带地点的上报是合法输入.
func TestRecordWasteLocationOptional(t *testing.T) {
	if err := rule.ValidateStruct(wasteReq(1.0)); err != nil {
		t.Errorf("request without location rejected: %v", err)
	}
}

// TestRecordWasteNegativeWeight 负重量在业务校验层被拒绝.
func TestRecordWasteNegativeWeight(t *testing.T) {
	if err := rule.ValidateStruct(wasteReq(-5)); err == nil {
		t.Error("expected error for negative weight, got nil")
	}
}

// TestRecordWasteZeroWeight 0 是合法重量，与"未提供"区分.
func TestRecordWasteZeroWeight(t *testing.T) {
	if err := rule.ValidateStruct(wasteReq(0)); err != nil {
		t.Errorf("zero weight rejected: %v", err)
	}

	missing := types.RecordWasteRequest{Type: "recyclable"}
	if err := rule.ValidateStruct(missing); err == nil {
		t.Error("expected error for missing weight, got nil")
	}
}

// TestRecordWasteUnknownType 未知采集类型被拒绝.
func TestRecordWasteUnknownType(t *testing.T) {
	req := wasteReq(1.0)
	req.Type = "hazardous"

	if err := rule.ValidateStruct(req); err == nil {
		t.Error("expected error for unknown type, got nil")
	}
}

// TestBindingTagsIndependentOfRuleEngine rule 引擎初始化后，
// gin 绑定层的 binding 标签必须仍然生效.
func TestBindingTagsIndependentOfRuleEngine(t *testing.T) {
	if err := rule.ValidateStruct(wasteReq(1.0)); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	neg := wasteReq(-5)
	if err := binding.Validator.ValidateStruct(&neg); err == nil {
		t.Error("binding tags no longer enforced after rule engine init")
	}
}

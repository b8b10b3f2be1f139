package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/ecotrackhq/ecotrack/pkg/rule"
)

// recordInput 用于测试 ValidateStruct.
type recordInput struct {
	Type   string  `rule:"required,oneof=recyclable non-recyclable"`
	Weight float64 `rule:"gte=0"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	valid := recordInput{Type: "recyclable", Weight: 2.5}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效：未知类型
	invalid1 := recordInput{Type: "hazardous", Weight: 2.5}

	err = rule.ValidateStruct(invalid1)
	if err == nil {
		t.Error("Expected error for invalid struct (unknown type), got nil")
	}

	// 无效：负重量
	invalid2 := recordInput{Type: "non-recyclable", Weight: -1}

	err = rule.ValidateStruct(invalid2)
	if err == nil {
		t.Error("Expected error for invalid struct (negative weight), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	err := rule.ValidateVar(2.5, "gte=0")
	if err != nil {
		t.Errorf("Expected no error for valid number, got %v", err)
	}

	err = rule.ValidateVar(-0.1, "gte=0")
	if err == nil {
		t.Error("Expected error for negative number, got nil")
	}

	err = rule.ValidateVar("recyclable", "oneof=recyclable non-recyclable")
	if err != nil {
		t.Errorf("Expected no error for valid type, got %v", err)
	}

	err = rule.ValidateVar("organic", "oneof=recyclable non-recyclable")
	if err == nil {
		t.Error("Expected error for unknown type, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：重量最多一位小数
	err := rule.RegisterValidation("one_decimal", func(fl validator.FieldLevel) bool {
		w, ok := fl.Field().Interface().(float64)
		if !ok {
			return false
		}

		scaled := w * 10

		return scaled == float64(int64(scaled))
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	err = rule.ValidateVar(3.5, "one_decimal")
	if err != nil {
		t.Errorf("Expected no error for one-decimal weight, got %v", err)
	}

	err = rule.ValidateVar(3.55, "one_decimal")
	if err == nil {
		t.Error("Expected error for two-decimal weight, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("location_name", "required,min=2")

	err := rule.ValidateVar("Main St", "location_name")
	if err != nil {
		t.Errorf("Expected no error for valid location with alias, got %v", err)
	}

	err = rule.ValidateVar("a", "location_name")
	if err == nil {
		t.Error("Expected error for invalid location with alias, got nil")
	}
}

// Package rule 基于 go-playground/validator 封装业务校验，
// 校验标签统一使用 "rule"，并预置废弃物领域的常用别名.
//
// 引擎是独立实例，不复用 gin binding 的共享引擎：
// SetTagName 会改掉共享引擎的标签名，让 HTTP 绑定层的
// binding 标签全部失效.
package rule

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	inst *validator.Validate
	once sync.Once
)

func lazyInit() {
	once.Do(func() {
		inst = validator.New()
		inst.SetTagName("rule")

		// 领域别名：采集类型与容器状态在多个请求结构体中复用
		inst.RegisterAlias("waste_type", "oneof=recyclable non-recyclable")
		inst.RegisterAlias("bin_status", "oneof=active full maintenance")
	})
}

// Engine 返回全局 *validator.Validate.
func Engine() *validator.Validate {
	lazyInit()

	return inst
}

// RegisterValidation 注册自定义校验函数.
func RegisterValidation(tag string, fn validator.Func, opts ...bool) error {
	lazyInit()

	return inst.RegisterValidation(tag, fn, opts...)
}

// ValidateStruct 对结构体执行完整校验，返回原始 error.
func ValidateStruct(s any) error {
	lazyInit()

	return inst.Struct(s)
}

// ValidateVar 按规则对单个变量校验，例如: ValidateVar(3.5, "gte=0").
func ValidateVar(field any, tag string) error {
	lazyInit()

	return inst.Var(field, tag)
}

// RegisterAlias 注册别名规则.
func RegisterAlias(alias, rules string) {
	lazyInit()

	inst.RegisterAlias(alias, rules)
}
